package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// 出品者の登録/ログイン/管理のHTTP
type AdminHandler struct {
	registerUC *auth.RegisterAdminUsecase
	loginUC    *auth.LoginAdminUsecase
	adminUC    *usecase.AdminUsecase
}

// DI
func NewAdminHandler(
	registerUC *auth.RegisterAdminUsecase,
	loginUC *auth.LoginAdminUsecase,
	adminUC *usecase.AdminUsecase,
) *AdminHandler {
	return &AdminHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		adminUC:    adminUC,
	}
}

type AdminRegisterRequest struct {
	AdminName string `json:"adminname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type AdminLoginRequest struct {
	AdminName string `json:"adminname"`
	Password  string `json:"password"`
}

type AdminLoginResponse struct {
	ID          int64  `json:"id"`
	AdminName   string `json:"adminname"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/adminregister/", h.register)
	e.POST("/adminlogin/", h.login)
	e.GET("/admins/", h.list)
	e.GET("/admins/:admin_id", h.detail)
	e.DELETE("/admins/:admin_id", h.remove)
}

func (h *AdminHandler) register(c echo.Context) error {
	var req AdminRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	created, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterInput{
		Name:     req.AdminName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err, "admin already exists", "admin not found")
	}

	return c.JSON(http.StatusCreated, usecase.AdminView{
		ID:        created.ID,
		AdminName: created.AdminName,
		Email:     created.Email,
	})
}

func (h *AdminHandler) login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Name:     req.AdminName,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err, "admin already exists", "admin not found")
	}

	return c.JSON(http.StatusOK, AdminLoginResponse{
		ID:          out.Admin.ID,
		AdminName:   out.Admin.AdminName,
		Email:       out.Admin.Email,
		AccessToken: out.AccessToken,
	})
}

func (h *AdminHandler) list(c echo.Context) error {
	out, err := h.adminUC.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) detail(c echo.Context) error {
	adminID, err := strconv.ParseInt(c.Param("admin_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid admin_id"})
	}

	out, err := h.adminUC.Get(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) remove(c echo.Context) error {
	adminID, err := strconv.ParseInt(c.Param("admin_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid admin_id"})
	}

	out, err := h.adminUC.Delete(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
