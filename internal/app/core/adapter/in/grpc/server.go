package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-credit-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	core *usecase.CoreUseCase
}

func NewGrpcServer(core *usecase.CoreUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

func (s *GrpcServer) PostTransaction(ctx context.Context, req *pb.PostTransactionRequest) (*pb.PostTransactionResponse, error) {
	// 1. 解析 RefID，留空時由 server 產生 (client 重送時應帶同一組)
	refID := uuid.New()
	if req.RefId != "" {
		u, err := uuid.Parse(req.RefId)
		if err != nil {
			return &pb.PostTransactionResponse{
				Success: false,
				Message: "invalid ref_id: " + err.Error(),
			}, nil
		}
		refID = u
	}

	// 2. 轉換交易類型
	var kind domain.TransactionKind
	switch req.Kind {
	case pb.TransactionKind_CREDIT:
		kind = domain.TransactionKindCredit
	case pb.TransactionKind_DEBIT:
		kind = domain.TransactionKindDebit
	default:
		return &pb.PostTransactionResponse{
			Success: false,
			Message: "invalid transaction kind",
		}, nil
	}

	// 3. 執行交易
	balance, limit, err := s.core.ApplyTransaction(ctx, req.ClientId, refID, req.Amount, kind, req.Description)
	if err != nil {
		// 暫時性錯誤用 status code 回報，讓呼叫方決定是否重試
		switch {
		case errors.Is(err, domain.ErrBusy):
			return nil, status.Error(codes.ResourceExhausted, err.Error())
		case errors.Is(err, domain.ErrStoreUnavailable):
			return nil, status.Error(codes.Unavailable, err.Error())
		}
		// 業務邏輯拒絕，回傳 Success=false (Soft Failure)
		return &pb.PostTransactionResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &pb.PostTransactionResponse{
		Success: true,
		Balance: balance,
		Limit:   limit,
	}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	view, err := s.core.GetBalance(ctx, req.ClientId)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetBalanceResponse{
		Balance:     view.Balance,
		Limit:       view.Limit,
		GeneratedAt: view.GeneratedAt,
	}, nil
}

func (s *GrpcServer) GetStatement(ctx context.Context, req *pb.GetStatementRequest) (*pb.GetStatementResponse, error) {
	view, err := s.core.GetStatement(ctx, req.ClientId)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	entries := make([]*pb.StatementEntry, 0, len(view.Transactions))
	for _, tran := range view.Transactions {
		entry := &pb.StatementEntry{
			Amount:      tran.Amount,
			Description: tran.Description,
			CreatedAt:   tran.CreatedAt,
		}
		switch tran.Kind {
		case domain.TransactionKindCredit:
			entry.Kind = pb.TransactionKind_CREDIT
		case domain.TransactionKindDebit:
			entry.Kind = pb.TransactionKind_DEBIT
		}
		entries = append(entries, entry)
	}

	return &pb.GetStatementResponse{
		Balance:      view.Balance,
		Limit:        view.Limit,
		GeneratedAt:  view.GeneratedAt,
		Transactions: entries,
	}, nil
}

func (s *GrpcServer) GetCacheStats(ctx context.Context, req *pb.GetCacheStatsRequest) (*pb.GetCacheStatsResponse, error) {
	stats := s.core.CacheStats()
	return &pb.GetCacheStatsResponse{
		Balance: &pb.CacheCounter{
			Hits:     stats.Balance.Hits,
			Misses:   stats.Balance.Misses,
			HitRatio: stats.Balance.Ratio,
		},
		Statement: &pb.CacheCounter{
			Hits:     stats.Statement.Hits,
			Misses:   stats.Statement.Misses,
			HitRatio: stats.Statement.Ratio,
		},
	}, nil
}
