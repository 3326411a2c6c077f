package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/JoeShih716/go-credit-ledger/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-credit-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-credit-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/cache"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-credit-ledger/pkg/mysql"
	"github.com/JoeShih716/go-credit-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-credit-ledger/proto"
)

// 持久層類型
const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

// ClientSeed 開戶配置 (額度固定，餘額從 0 開始)
type ClientSeed struct {
	ID    int64 `yaml:"id"`
	Limit int64 `yaml:"limit"`
}

type Config struct {
	Listen  string         `yaml:"listen"`
	Store   string         `yaml:"store"`
	WALPath string         `yaml:"wal_path"`
	MySQL   mysql.Config   `yaml:"mysql"`
	Ledger  usecase.Config `yaml:"ledger"`
	Cache   cache.Config   `yaml:"cache"`
	Clients []ClientSeed   `yaml:"clients"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 建立持久層
	var ledgerStore usecase.Ledger
	switch cfg.Store {
	case StoreMySQL:
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		defer dbClient.Close()
		log.Println("Connected to MySQL successfully")

		repo := mysql_adapter.NewMySQLLedger(dbClient)
		if err := repo.Seed(context.Background(), seedClients(cfg.Clients)); err != nil {
			log.Fatalf("Failed to seed clients: %v", err)
		}
		ledgerStore = repo
	case StoreMemory:
		// 初始化 WAL，重啟後可重放回最後的已提交狀態
		walFile, err := wal.NewWAL(cfg.WALPath)
		if err != nil {
			log.Fatalf("Failed to init WAL: %v", err)
		}
		defer walFile.Close()

		clients := make(map[int64]*domain.Client, len(cfg.Clients))
		for _, seed := range cfg.Clients {
			clients[seed.ID] = domain.NewClient(seed.ID, seed.Limit, 0)
		}
		memLedger, err := memory_adapter.NewMemoryLedger(clients, walFile)
		if err != nil {
			log.Fatalf("Failed to init MemoryLedger: %v", err)
		}
		ledgerStore = memLedger
	default:
		log.Fatalf("Invalid store type: %q", cfg.Store)
	}
	log.Printf("Using %s store with %d clients", cfg.Store, len(cfg.Clients))

	// 3. 初始化快取層與 UseCase
	views := cache.NewViewCache(cfg.Cache)
	coreUseCase := usecase.NewCoreUseCase(ledgerStore, views, cfg.Ledger)

	// 4. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(coreUseCase)

	// 5. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer()
	pb.RegisterLedgerServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		log.Printf("Starting gRPC server on %s", cfg.Listen)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	s.GracefulStop()
	log.Println("Server exited")
}

func seedClients(seeds []ClientSeed) []domain.Client {
	clients := make([]domain.Client, 0, len(seeds))
	for _, seed := range seeds {
		clients = append(clients, domain.Client{ID: seed.ID, Limit: seed.Limit})
	}
	return clients
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Listen == "" {
		cfg.Listen = ":50051"
	}
	if cfg.Store == "" {
		cfg.Store = StoreMemory
	}
	if cfg.WALPath == "" {
		cfg.WALPath = "wal.log"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Ledger.LockTimeout == 0 {
		cfg.Ledger.LockTimeout = usecase.DefaultLockTimeout
	}
	if cfg.Ledger.StatementSize == 0 {
		cfg.Ledger.StatementSize = usecase.DefaultStatementSize
	}
	if cfg.Cache.BalanceTTL == 0 {
		cfg.Cache.BalanceTTL = cache.DefaultBalanceTTL
	}
	if cfg.Cache.StatementTTL == 0 {
		cfg.Cache.StatementTTL = cache.DefaultStatementTTL
	}
	if len(cfg.Clients) == 0 {
		// 預設五個客戶，額度沿用壓測情境的配置
		cfg.Clients = []ClientSeed{
			{ID: 1, Limit: 100000},
			{ID: 2, Limit: 80000},
			{ID: 3, Limit: 1000000},
			{ID: 4, Limit: 10000000},
			{ID: 5, Limit: 500000},
		}
	}
	return cfg
}
