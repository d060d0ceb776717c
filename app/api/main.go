package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/database/mongoclient"
	"github.com/minterra/marketapi/base/log"
	bValidator "github.com/minterra/marketapi/base/validator"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/marketplace"
	mmiddleware "github.com/minterra/marketapi/middleware"
	"github.com/minterra/marketapi/service/query"
	event_delivery "github.com/minterra/marketapi/stores/event/delivery/http"
	event_repository "github.com/minterra/marketapi/stores/event/repository"
	event_usecase "github.com/minterra/marketapi/stores/event/usecase"
	hc_delivery "github.com/minterra/marketapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/minterra/marketapi/stores/healthcheck/repository"
	hc_usecase "github.com/minterra/marketapi/stores/healthcheck/usecase"
	listing_repository "github.com/minterra/marketapi/stores/listing/repository"
	marketplace_delivery "github.com/minterra/marketapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/minterra/marketapi/stores/marketplace/repository"
	marketplace_usecase "github.com/minterra/marketapi/stores/marketplace/usecase"
	offer_repository "github.com/minterra/marketapi/stores/offer/repository"
	pause_repository "github.com/minterra/marketapi/stores/pause/repository"
	pause_usecase "github.com/minterra/marketapi/stores/pause/usecase"
	payment_repository "github.com/minterra/marketapi/stores/payment/repository"
	reward_delivery "github.com/minterra/marketapi/stores/reward/delivery/http"
	reward_repository "github.com/minterra/marketapi/stores/reward/repository"
	reward_usecase "github.com/minterra/marketapi/stores/reward/usecase"
	token_delivery "github.com/minterra/marketapi/stores/token/delivery/http"
	token_repository "github.com/minterra/marketapi/stores/token/repository"
	token_usecase "github.com/minterra/marketapi/stores/token/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func defaultParams() marketplace.Params {
	whitelist := []domain.Address{}
	for _, addr := range viper.GetStringSlice("params.whitelist") {
		whitelist = append(whitelist, domain.Address(addr).ToLower())
	}
	return marketplace.Params{
		MintFee:            viper.GetString("params.mintFee"),
		SharedRewardRate:   viper.GetInt64("params.sharedRewardRate"),
		MaxMintPerTx:       viper.GetInt64("params.maxMintPerTx"),
		MaxSupply:          viper.GetInt64("params.maxSupply"),
		DeveloperWallet:    domain.Address(viper.GetString("params.developerWallet")).ToLower(),
		MinterRate:         viper.GetInt64("params.minterRate"),
		DeveloperRate:      viper.GetInt64("params.developerRate"),
		MinListingDuration: viper.GetInt64("params.minListingDuration"),
		MaxListingDuration: viper.GetInt64("params.maxListingDuration"),
		MinBidIncreaseRate: viper.GetInt64("params.minBidIncreaseRate"),
		BidExtensionTime:   viper.GetInt64("params.bidExtensionTime"),
		AuctionsEnabled:    viper.GetBool("params.auctionsEnabled"),
		Whitelist:          whitelist,
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// the managed collection and the marketplace owner
	chainId := domain.ChainId(viper.GetInt32("collection.chainId"))
	contractAddress := domain.Address(viper.GetString("collection.contractAddress")).ToLower()
	owner := domain.Address(viper.GetString("admin.owner")).ToLower()
	escrow := domain.Address(viper.GetString("admin.escrow")).ToLower()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	listingRepo := listing_repository.NewListingRepo(q)
	offerRepo := offer_repository.NewOfferRepo(q)
	pauseRepo := pause_repository.NewPauseRepo(q)
	paramsRepo := marketplace_repository.NewParamsRepo(q, defaultParams())
	tokenRepo := token_repository.NewTokenRepo(q)
	vault := payment_repository.NewVaultRepo(q)
	rewardRepo := reward_repository.NewRewardRepo(q)
	eventRepo := event_repository.NewEventRepo(q)

	hc := hc_usecase.New(hcRepo)
	pauseUC := pause_usecase.NewPauseUseCase(pauseRepo)
	eventUC := event_usecase.NewEventUseCase(eventRepo)
	rewardUC := reward_usecase.NewRewardUseCase(&reward_usecase.RewardUseCaseCfg{
		Q:               q,
		Repo:            rewardRepo,
		Registry:        tokenRepo,
		Vault:           vault,
		EventRepo:       eventRepo,
		ChainId:         chainId,
		ContractAddress: contractAddress,
	})
	tokenUC := token_usecase.NewTokenUseCase(&token_usecase.TokenUseCaseCfg{
		Q:               q,
		TokenRepo:       tokenRepo,
		ParamsRepo:      paramsRepo,
		RewardUC:        rewardUC,
		Vault:           vault,
		EventRepo:       eventRepo,
		ChainId:         chainId,
		ContractAddress: contractAddress,
	})
	marketplaceUC := marketplace_usecase.NewMarketplaceUseCase(&marketplace_usecase.MarketplaceUseCaseCfg{
		Q:           q,
		ListingRepo: listingRepo,
		OfferRepo:   offerRepo,
		ParamsRepo:  paramsRepo,
		Registry:    tokenRepo,
		Vault:       vault,
		RewardUC:    rewardUC,
		PauseUC:     pauseUC,
		EventRepo:   eventRepo,
		Owner:       owner,
		Escrow:      escrow,
	})

	hc_delivery.New(e, hc)
	marketplace_delivery.New(e, marketplaceUC)
	token_delivery.New(e, tokenUC)
	reward_delivery.New(e, rewardUC)
	event_delivery.New(e, eventUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
