package service

import (
	"context"
	"errors"
	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/biz/application/dto/note/sts"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/user"
	"kadai-note/biz/infrastructure/util"
	"kadai-note/biz/infrastructure/util/log"
	"time"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IUserService interface {
	SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error)
	SendVerifyCode(ctx context.Context, req *show.SendVerifyCodeReq) (*show.Response, error)
	GetUserInfo(ctx context.Context, req *show.GetUserInfoReq) (*show.GetUserInfoResp, error)
	UpdateUserInfo(ctx context.Context, req *show.UpdateUserInfoReq) (*show.Response, error)
}

type UserService struct {
	UserMapper *user.MongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignIn 登录用户。认证交给中台，本地只维护资料档案，
// 首次登录时补一条默认档案
func (s *UserService) SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error) {
	httpClient := util.GetHttpClient()
	signInResponse, err := httpClient.SignIn(ctx, req.AuthType, req.AuthId, req.VerifyCode, req.Password)
	if err != nil || cast.ToFloat64(signInResponse["code"]) != 0 {
		log.CtxError(ctx, "中台登录失败: %v, resp=%v", err, signInResponse)
		return nil, consts.ErrSignIn
	}
	resp := new(sts.SignInResp)
	if dataMap, ok := signInResponse["data"].(map[string]any); ok {
		if err := mapstructure.Decode(dataMap, resp); err != nil {
			return nil, consts.ErrSignIn
		}
	} else {
		return nil, consts.ErrSignIn
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(resp)
	if err != nil {
		return nil, consts.ErrSignIn
	}

	userId := resp.UserId

	u, err := s.UserMapper.FindOne(ctx, userId)
	if errors.Is(err, consts.ErrNotFound) || u == nil {
		// 注册流程
		oid, err2 := primitive.ObjectIDFromHex(userId)
		if err2 != nil {
			return nil, err2
		}
		now := time.Now()
		u = &user.User{
			ID:         oid,
			Username:   consts.DefaultUsername,
			Avatar:     resp.Avatar,
			CreateTime: now,
			UpdateTime: now,
		}
		if resp.Name != "" {
			u.Username = resp.Name
		}
		if req.AuthType == "phone" {
			u.Phone = req.AuthId
		}

		err = s.UserMapper.Insert(ctx, u)
		if err != nil {
			return nil, consts.ErrSignUp
		}
	} else if err != nil {
		return nil, consts.ErrSignIn
	}

	return &show.SignInResp{
		Id:           userId,
		Name:         u.Username,
		Avatar:       u.Avatar,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
	}, nil
}

// SendVerifyCode 发送验证码
func (s *UserService) SendVerifyCode(ctx context.Context, req *show.SendVerifyCodeReq) (*show.Response, error) {
	// 查找用户
	aUser, err := s.UserMapper.FindOneByPhone(ctx, req.AuthId)

	if req.Type == 1 { // 登录验证码
		// 查找数据库判断手机号是否注册过
		if errors.Is(err, consts.ErrNotFound) || aUser == nil { // 未找到，说明没有注册
			return nil, consts.ErrNotSignUp
		} else if err != nil {
			return nil, consts.ErrSend
		}
	} else { // 注册验证码
		if err == nil && aUser != nil {
			return nil, consts.ErrRepeatedSignUp
		} else if err != nil && !errors.Is(err, consts.ErrNotFound) {
			return nil, consts.ErrSignUp
		}
	}

	// 通过中台发送验证码
	httpClient := util.GetHttpClient()
	ret, err := httpClient.SendVerifyCode(ctx, req.AuthType, req.AuthId)
	if err != nil || cast.ToFloat64(ret["code"]) != 0 {
		log.Error("发送验证码失败:%v, ret:%v", err, ret)
		return nil, consts.ErrSend
	}

	return util.Succeed("发送验证码成功，请注意查收")
}

// GetUserInfo 获取用户信息
func (s *UserService) GetUserInfo(ctx context.Context, req *show.GetUserInfoReq) (*show.GetUserInfoResp, error) {
	// 用户信息
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	// 查询用户
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return &show.GetUserInfoResp{
			Code:    -1,
			Msg:     "查询用户信息失败，请先登录或重试",
			Payload: nil,
		}, nil
	}

	return &show.GetUserInfoResp{
		Code: 0,
		Msg:  "查询成功",
		Payload: &show.UserPayload{
			Name:   u.Username,
			Avatar: u.Avatar,
			Phone:  u.Phone,
		},
	}, nil
}

// UpdateUserInfo 更新用户信息
func (s *UserService) UpdateUserInfo(ctx context.Context, req *show.UpdateUserInfoReq) (*show.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if req.Name != nil {
		u.Username = *req.Name
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}

	err = s.UserMapper.Update(ctx, u)
	if err != nil {
		return nil, consts.ErrUpdate
	}

	return util.Succeed("更新成功")
}
