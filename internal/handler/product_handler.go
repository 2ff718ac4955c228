package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 商品カタログのHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admins/:admin_id/products/", h.create)
	e.GET("/allproducts", h.list)
	e.GET("/admins/:admin_id/products/", h.listByAdmin)
	e.PUT("/products/:product_id", h.update)
	e.DELETE("/products/:product_id/admin/:admin_id", h.remove)

	//リファレンス通りルート直下で商品詳細を返す
	e.GET("/:product_id", h.detail)
}

// multipart/form-data: name, description, price, image_file
func (h *ProductHandler) create(c echo.Context) error {
	adminID, err := strconv.ParseInt(c.Param("admin_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid admin_id"})
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}

	fh, err := c.FormFile("image_file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image_file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read image_file"})
	}
	defer src.Close()

	out, err := h.uc.Create(c.Request().Context(), adminID, usecase.CreateProductInput{
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		Price:         price,
		ImageFilename: fh.Filename,
		Image:         src,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	out, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) listByAdmin(c echo.Context) error {
	adminID, err := strconv.ParseInt(c.Param("admin_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid admin_id"})
	}

	out, err := h.uc.ListByAdmin(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// フォームで渡された項目だけ更新する
func (h *ProductHandler) update(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	var in usecase.UpdateProductInput

	if v := c.FormValue("name"); v != "" {
		in.Name = &v
	}
	if v := c.FormValue("description"); v != "" {
		in.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
		}
		in.Price = &price
	}

	var src multipart.File
	if fh, err := c.FormFile("image_file"); err == nil {
		src, err = fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read image_file"})
		}
		defer src.Close()

		in.ImageFilename = fh.Filename
		in.Image = src
	}

	out, err := h.uc.Update(c.Request().Context(), productID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) remove(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}
	adminID, err := strconv.ParseInt(c.Param("admin_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid admin_id"})
	}

	out, err := h.uc.Delete(c.Request().Context(), productID, adminID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
