package authrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/neurofleetx/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/neurofleetx/fleetweb/pkg/core/usecase/authuc"
)

type rawRegisterReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (rs *resource) DserRegisterReq(c *gin.Context) *authuc.RegisterInput {
	req := &rawRegisterReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &authuc.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
}

type rawLoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (rs *resource) DserLoginReq(c *gin.Context) *rawLoginReq {
	req := &rawLoginReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
