package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	social "social_wallet_back"
	"social_wallet_back/pkg/chainclient"
	"social_wallet_back/pkg/handler"
	"social_wallet_back/pkg/registry"
	"social_wallet_back/pkg/repository"
	"social_wallet_back/pkg/service"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.Infoln("Запуск сервера")
	if err := godotenv.Load(); err != nil {
		logrus.Infof("Ошибка инициализации переменных окружения .env: %s \n", err)
	}

	if err := InitConfig(); err != nil {
		logrus.Fatalf("Ошибка (viper) при инициализации конфига .yaml: %s \n", err.Error())
	}
	logrus.Infoln("Конфиг YAML инициализирован")

	db, err := repository.NewPostgresDB(repository.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: os.Getenv("DB_PASS_LOCAL"),
		DBName:   viper.GetString("db.dbname"),
		SSLMode:  viper.GetString("db.sslmode"),
	})
	if err != nil {
		logrus.Fatalf("Ошибка при инициализации базы данных: %s \n", err.Error())
	}
	logrus.Info("База данных подключена")

	chain, err := chainclient.NewEvmClient(map[int64]string{
		registry.ChainIDBSC: viper.GetString("rpc.bsc"),
		registry.ChainIDETH: viper.GetString("rpc.eth"),
	}, registry.ChainIDBSC)
	if err != nil {
		logrus.Fatalf("Ошибка при подключении к RPC сетей: %s \n", err.Error())
	}
	logrus.Info("RPC-клиенты сетей подключены")

	repos := repository.NewRepository(db)
	services := service.NewService(repos, chain)
	handlers := handler.NewHandler(services)

	// фоновое обновление таблицы цен
	go refreshPrices(services.Prices)

	srv := new(social.Server)
	if err := srv.Run(os.Getenv("PORT"), handlers.InitRoute()); err != nil {
		logrus.Fatalf("Ошибка при запуске сервера: %s \n", err)
	}
}

func refreshPrices(prices service.Prices) {
	prices.RefreshPrices(context.Background())

	ticker := time.NewTicker(service.RefreshPeriod)
	defer ticker.Stop()

	for range ticker.C {
		prices.RefreshPrices(context.Background())
	}
}

func InitConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}
