package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/storage"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// ログイン時に返すアクセストークンの発行器
type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(subjectID int64, role string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(i.accessTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

func main() {
	//.envが無ければ環境変数をそのまま使う
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
	); err != nil {
		panic(err)
	}

	//注文日時の表示用タイムゾーン
	displayLoc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//画像の保存先
	images := storage.NewLocalImageStore(cfg.UploadDir)

	//bcrypt（登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	registerUserUC := auth.NewRegisterUserUsecase(userRepo, hasher)
	loginUserUC := auth.NewLoginUserUsecase(userRepo, verifier, issuer)
	registerAdminUC := auth.NewRegisterAdminUsecase(adminRepo, hasher)
	loginAdminUC := auth.NewLoginAdminUsecase(adminRepo, verifier, issuer)

	userUC := usecase.NewUserUsecase(userRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo)
	productUC := usecase.NewProductUsecase(productRepo, images)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo, userRepo)
	orderUC := usecase.NewOrderUsecase(txManager, displayLoc)
	reportUC := usecase.NewSellerReportUsecase(orderRepo)

	//Handler生成
	handlers := server.Handlers{
		User:         handler.NewUserHandler(registerUserUC, loginUserUC, userUC),
		Admin:        handler.NewAdminHandler(registerAdminUC, loginAdminUC, adminUC),
		Product:      handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(orderUC),
		SellerReport: handler.NewSellerReportHandler(reportUC),
	}

	//Server起動
	e := server.New(cfg)
	if err := server.Start(e, cfg, handlers); err != nil {
		panic(err)
	}
}
