package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoppingmall/internal/config"
	"shoppingmall/internal/handler"
	"shoppingmall/internal/infra/cache"
	"shoppingmall/internal/infra/db"
	infraRepo "shoppingmall/internal/infra/repository"
	"shoppingmall/internal/infra/token"
	"shoppingmall/internal/logger"
	"shoppingmall/internal/middleware"
	repo "shoppingmall/internal/repository"
	"shoppingmall/internal/server"
	"shoppingmall/internal/usecase"
	auth "shoppingmall/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	//.envは無くてもよい
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Service: "shoppingmall",
		Env:     cfg.GoEnv,
		Level:   cfg.LogLevel,
	})

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	//Repository（GORM実装）生成
	var goodsRepo repo.GoodsRepository = infraRepo.NewGoodsGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)

	//REDIS_ADDRがあれば商品詳細をキャッシュ
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		pctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pctx).Err(); err != nil {
			// 落ちていてもDBから読めるので起動は続ける
			log.Warn("redis ping failed", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		}
		cancel()

		goodsRepo = cache.NewCachedGoodsRepository(goodsRepo, cache.NewRedisGoodsCache(rdb, cfg.GoodsCacheTTL), log)
	}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)

	//Usecase生成
	signupUC := auth.NewSignupUsecase(userRepo, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, &realClock{})
	goodsUC := usecase.NewGoodsUsecase(goodsRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, goodsRepo)

	//Handler生成
	e := server.New(log)
	server.RegisterRoutes(e, server.Handlers{
		Health: handler.NewHealthHandler(sqlDB),
		Auth:   handler.NewAuthHandler(signupUC, loginUC),
		Goods:  handler.NewGoodsHandler(goodsUC),
		Cart:   handler.NewCartHandler(cartUC),
	}, middleware.Authenticated(issuer, userRepo))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("server starting", slog.String("addr", cfg.Addr()))
	if err := server.Run(ctx, e, cfg.Addr(), cfg.ShutdownTimeout); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
