package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 商品画像の置き場所。usecaseからはファイルシステムを直接触らない。
type ImageStore interface {
	// 保存して参照用の相対パスを返す
	Save(filename string, r io.Reader) (string, error)
	Remove(path string) error
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	images      ImageStore
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, images ImageStore) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		images:      images,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64

	//アップロードされた画像
	ImageFilename string
	Image         io.Reader
}

// 部分更新。nilのフィールドは変更しない。
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64

	ImageFilename string
	Image         io.Reader
}

// Create は商品を登録し、画像を保存パス付きで返す。
func (u *ProductUsecase) Create(ctx context.Context, adminID int64, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Image == nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "image_file is required")
	}

	imagePath, err := u.images.Save(in.ImageFilename, in.Image)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImagePath:   imagePath,
		AdminID:     adminID,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// ListByAdmin は出品者の商品一覧。0件は404（リファレンス仕様）。
func (u *ProductUsecase) ListByAdmin(ctx context.Context, adminID int64) ([]model.Product, error) {
	products, err := u.productRepo.ListByAdminID(ctx, adminID)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(products) == 0 {
		return []model.Product{}, NewHTTPError(http.StatusNotFound, "products not found for this seller")
	}
	return products, nil
}

// Update は指定フィールドのみ上書きする。画像があれば差し替え。
func (u *ProductUsecase) Update(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		p.Name = *in.Name
	}
	if in.Description != nil && *in.Description != "" {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		p.Price = *in.Price
	}

	if in.Image != nil {
		imagePath, err := u.images.Save(in.ImageFilename, in.Image)
		if err != nil {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
		p.ImagePath = imagePath
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

// Delete は所有チェック込みで商品を削除し、画像ファイルも消す。
func (u *ProductUsecase) Delete(ctx context.Context, productID int64, adminID int64) (model.Product, error) {
	p, err := u.productRepo.FindByIDAndAdminID(ctx, productID, adminID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//画像の削除失敗はレコード削除を妨げない
	if p.ImagePath != "" {
		_ = u.images.Remove(p.ImagePath)
	}

	if err := u.productRepo.DeleteByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}
