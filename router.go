package main

import (
	handler "kadai-note/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	// 附件下载走临时令牌，不带用户态
	r.GET("/api/attachment/:token", handler.FetchAttachment)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/sign_in", handler.SignIn)
			auth.POST("/send_verify_code", handler.SendVerifyCode)
		}

		user := api.Group("/user")
		{
			user.POST("/info", handler.GetUserInfo)
			user.POST("/update", handler.UpdateUserInfo)
		}

		kadai := api.Group("/kadai")
		{
			kadai.POST("/create", handler.CreateKadai)
			kadai.POST("/list", handler.ListKadai)
			kadai.POST("/done", handler.DoneKadai)
			kadai.POST("/delete", handler.DeleteKadai)
		}

		class := api.Group("/class")
		{
			class.POST("/create", handler.CreateClass)
			class.POST("/list", handler.ListClasses)
			class.POST("/delete", handler.DeleteClass)
			class.POST("/memo/get", handler.GetMemo)
			class.POST("/memo/save", handler.SaveMemo)

			attachment := class.Group("/attachment")
			{
				attachment.POST("/upload", handler.UploadAttachments)
				attachment.POST("/list", handler.ListAttachments)
				attachment.POST("/delete", handler.DeleteAttachment)
				attachment.POST("/release", handler.ReleaseAttachment)
			}
		}

		schedule := api.Group("/schedule")
		{
			schedule.POST("/get", handler.GetSchedule)
			schedule.POST("/save", handler.SaveSchedule)
			schedule.POST("/attendance/mark", handler.MarkAttendance)
			schedule.POST("/attendance/reset", handler.ResetSubject)
			schedule.POST("/attendance/get", handler.GetAttendance)
		}

		timer := api.Group("/timer")
		{
			timer.POST("/start", handler.StartTimer)
			timer.POST("/pause", handler.PauseTimer)
			timer.POST("/resume", handler.ResumeTimer)
			timer.POST("/stop", handler.StopTimer)
			timer.POST("/status", handler.TimerStatus)
		}

		studyLog := api.Group("/study_log")
		{
			studyLog.POST("/list", handler.ListStudyLog)
			studyLog.POST("/delete", handler.DeleteStudyLog)
			studyLog.POST("/weekly_chart", handler.WeeklyChart)
		}
	}
}
