package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignUp            = NewErrno(codes.Code(1001), errors.New("注册失败，请重试"))
	ErrSignIn            = NewErrno(codes.Code(1002), errors.New("登录失败，请先注册或重试"))
	ErrRepeatedSignUp    = NewErrno(codes.Code(1003), errors.New("该手机号已注册"))
	ErrNotSignUp         = NewErrno(codes.Code(1004), errors.New("请确认手机号已注册"))
	ErrSend              = NewErrno(codes.Code(1005), errors.New("发送验证码失败，请重试"))

	ErrCreateKadai  = NewErrno(codes.Code(1010), errors.New("添加课题失败，请重试"))
	ErrGetKadaiList = NewErrno(codes.Code(1011), errors.New("获取课题列表失败"))
	ErrDoneKadai    = NewErrno(codes.Code(1012), errors.New("完成课题失败，请重试"))
	ErrDeleteKadai  = NewErrno(codes.Code(1013), errors.New("删除课题失败，请重试"))
	ErrEmptyTitle   = NewErrno(codes.InvalidArgument, errors.New("请输入课题名和截止日期"))

	ErrCreateClass  = NewErrno(codes.Code(1020), errors.New("添加授业失败，请重试"))
	ErrGetClassList = NewErrno(codes.Code(1021), errors.New("获取授业列表失败"))
	ErrDeleteClass  = NewErrno(codes.Code(1022), errors.New("删除授业失败，请重试"))
	ErrEmptyName    = NewErrno(codes.InvalidArgument, errors.New("请输入授业名"))
	ErrGetMemo      = NewErrno(codes.Code(1023), errors.New("读取备忘失败，请重试"))
	ErrSaveMemo     = NewErrno(codes.Code(1024), errors.New("保存备忘失败，请重试"))

	ErrSaveAttachment   = NewErrno(codes.Code(1030), errors.New("保存图片失败，请重试"))
	ErrGetAttachment    = NewErrno(codes.Code(1031), errors.New("读取图片失败，请重试"))
	ErrDeleteAttachment = NewErrno(codes.Code(1032), errors.New("删除图片失败，请重试"))
	ErrAttachmentGone   = NewErrno(codes.Code(1033), errors.New("图片链接已失效，请刷新后重试"))

	ErrGetSchedule   = NewErrno(codes.Code(1040), errors.New("读取时间割失败，请重试"))
	ErrSaveSchedule  = NewErrno(codes.Code(1041), errors.New("保存时间割失败，请重试"))
	ErrMarkClass     = NewErrno(codes.Code(1042), errors.New("出席打刻失败，请重试"))
	ErrResetSubject  = NewErrno(codes.Code(1043), errors.New("重置出席数据失败，请重试"))
	ErrEmptySubject  = NewErrno(codes.InvalidArgument, errors.New("请选择授业"))
	ErrInvalidStatus = NewErrno(codes.InvalidArgument, errors.New("无效的出席状态"))

	ErrTimerNotRunning = NewErrno(codes.Code(1050), errors.New("计时器尚未启动"))
	ErrSaveStudyLog    = NewErrno(codes.Code(1051), errors.New("记录学习时间失败，请重试"))
	ErrGetStudyLog     = NewErrno(codes.Code(1052), errors.New("获取学习记录失败"))
	ErrDeleteStudyLog  = NewErrno(codes.Code(1053), errors.New("删除学习记录失败，请重试"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("调用接口失败，请重试"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
