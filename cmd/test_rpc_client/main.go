package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	grpcpool "github.com/JoeShih716/go-credit-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-credit-ledger/proto"
)

var (
	target      = flag.String("target", "localhost:50051", "伺服器地址")
	totalCount  = flag.Int("n", 100000, "總請求數")
	concurrency = flag.Int("c", 200, "並發數")
	clientID    = flag.Int64("client", 1, "目標客戶 ID")
)

func main() {
	flag.Parse()

	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(*target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(*totalCount)

	sem := make(chan struct{}, *concurrency)

	var accepted, rejected atomic.Int64

	startTime := time.Now()

	for i := 0; i < *totalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			// 交替發送存入與支出，支出金額較小以避免全部觸頂額度
			kind := pb.TransactionKind_CREDIT
			amount := int64(100)
			if idx%2 == 1 {
				kind = pb.TransactionKind_DEBIT
				amount = 60
			}

			resp, err := c.PostTransaction(ctx, &pb.PostTransactionRequest{
				ClientId:    *clientID,
				Amount:      amount,
				Kind:        kind,
				Description: "loadtest",
				RefId:       uuid.New().String(),
			})

			if err != nil {
				if idx%10000 == 0 {
					log.Printf("PostTransaction %d failed: %v", idx, err)
				}
				return
			}
			if resp.Success {
				accepted.Add(1)
			} else {
				rejected.Add(1)
			}
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests in %v\n", *totalCount, elapsed)
	fmt.Printf("TPS: %.2f (accepted=%d rejected=%d)\n",
		float64(*totalCount)/elapsed.Seconds(), accepted.Load(), rejected.Load())

	// 壓測結束後讀取對帳單與快取命中統計，順便驗證讀取路徑
	stmt, err := c.GetStatement(ctx, &pb.GetStatementRequest{ClientId: *clientID})
	if err != nil {
		log.Fatalf("GetStatement failed: %v", err)
	}
	fmt.Printf("Statement: balance=%d limit=%d entries=%d\n",
		stmt.Balance, stmt.Limit, len(stmt.Transactions))

	stats, err := c.GetCacheStats(ctx, &pb.GetCacheStatsRequest{})
	if err != nil {
		log.Fatalf("GetCacheStats failed: %v", err)
	}
	fmt.Printf("Cache: balance hits=%d misses=%d ratio=%.2f | statement hits=%d misses=%d ratio=%.2f\n",
		stats.Balance.Hits, stats.Balance.Misses, stats.Balance.HitRatio,
		stats.Statement.Hits, stats.Statement.Misses, stats.Statement.HitRatio)
}
