package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	adminv1 "LendLedger/gen/go/lendledger/admin/v1"
	eventsv1 "LendLedger/gen/go/lendledger/events/v1"
	ingestv1 "LendLedger/gen/go/lendledger/ingest/v1"
	queryv1 "LendLedger/gen/go/lendledger/query/v1"
	"LendLedger/internal/ingestion"
	"LendLedger/internal/observability"
	"LendLedger/internal/persistence"
	"LendLedger/internal/projection"
	"LendLedger/internal/query"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB            *sql.DB
	QueryService  *query.QueryService
	IngestService *ingestion.GRPCIngestService
	SnapshotMgr   *persistence.SnapshotManager
	StartTime     time.Time
	HealthChecker *observability.HealthChecker
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{qs: deps.QueryService})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{svc: deps.IngestService})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		db:           deps.DB,
		snapMgr:      deps.SnapshotMgr,
		queryService: deps.QueryService,
		startTime:    deps.StartTime,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	// Register gateway handlers; they proxy HTTP/JSON to the gRPC server
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs *query.QueryService
}

func (s *queryServiceImpl) GetAccount(ctx context.Context, req *queryv1.GetAccountRequest) (*queryv1.GetAccountResponse, error) {
	accountID, err := requireAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	acc, err := s.qs.GetAccount(ctx, accountID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get account: %v", err)
	}

	return &queryv1.GetAccountResponse{
		AccountId:    acc.AccountID.String(),
		Collateral:   acc.Collateral,
		Staked:       acc.Staked,
		Savings:      acc.Savings,
		Fixed:        acc.Fixed,
		Debt:         acc.Debt,
		Reward:       acc.Reward,
		HealthFactor: acc.HealthFactor,
		AsOfSequence: acc.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetLoan(ctx context.Context, req *queryv1.GetLoanRequest) (*queryv1.GetLoanResponse, error) {
	accountID, err := requireAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	loan, err := s.qs.GetLoan(ctx, accountID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get loan: %v", err)
	}

	if loan.Principal == 0 {
		return nil, status.Errorf(codes.NotFound, "no active loan for account %s", req.AccountId)
	}

	return &queryv1.GetLoanResponse{
		AccountId:    loan.AccountID.String(),
		Principal:    loan.Principal,
		Backing:      loan.Backing,
		HealthFactor: loan.HealthFactor,
		AsOfSequence: loan.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetHealthFactor(ctx context.Context, req *queryv1.GetHealthFactorRequest) (*queryv1.GetHealthFactorResponse, error) {
	accountID, err := requireAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	hf, asOf, err := s.qs.GetHealthFactor(ctx, accountID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get health factor: %v", err)
	}

	return &queryv1.GetHealthFactorResponse{
		HealthFactor: hf,
		AsOfSequence: asOf,
	}, nil
}

func (s *queryServiceImpl) GetPoolStats(ctx context.Context, req *queryv1.GetPoolStatsRequest) (*queryv1.GetPoolStatsResponse, error) {
	stats, err := s.qs.GetPoolStats(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get pool stats: %v", err)
	}

	return &queryv1.GetPoolStatsResponse{
		TotalCollateral:    stats.TotalCollateral,
		TotalBorrowed:      stats.TotalBorrowed,
		TotalDeposits:      stats.TotalDeposits,
		LendableLiquidity:  stats.LendableLiquidity,
		UtilizationPercent: stats.UtilizationPercent,
		Treasury:           stats.Treasury,
		AsOfSequence:       stats.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListMovements(ctx context.Context, req *queryv1.ListMovementsRequest) (*queryv1.ListMovementsResponse, error) {
	accountID, err := requireAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	entries, err := s.qs.ListMovements(ctx, accountID, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list movements: %v", err)
	}

	var movements []*queryv1.MovementRecord
	for _, e := range entries {
		movements = append(movements, &queryv1.MovementRecord{
			MovementId: e.MovementID,
			BatchId:    e.BatchID,
			EventRef:   e.EventRef,
			Sequence:   e.Sequence,
			FromBucket: e.FromBucket,
			ToBucket:   e.ToBucket,
			Amount:     e.Amount,
			Kind:       e.Kind,
			Timestamp:  e.Timestamp,
		})
	}

	return &queryv1.ListMovementsResponse{
		Movements: movements,
	}, nil
}

func (s *queryServiceImpl) GetSystemStatus(ctx context.Context, req *queryv1.GetSystemStatusRequest) (*queryv1.GetSystemStatusResponse, error) {
	return &queryv1.GetSystemStatusResponse{
		State: "ready",
	}, nil
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func (s *ingestServiceImpl) SubmitEvent(ctx context.Context, req *ingestv1.SubmitEventRequest) (*ingestv1.SubmitEventResponse, error) {
	if req.Envelope == nil {
		return nil, status.Error(codes.InvalidArgument, "envelope is required")
	}

	// Map protobuf EventType enum to string event type name for the parser
	eventTypeName := protoEventTypeToString(req.Envelope.EventType)
	if eventTypeName == "" {
		return nil, status.Errorf(codes.InvalidArgument, "unknown event_type: %d", req.Envelope.EventType)
	}

	raw := ingestion.RawEvent{
		Subject: eventTypeName,
		Data:    req.Envelope.Payload,
	}

	evt, err := ingestion.ParseRawEvent(raw, eventTypeName)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "parse payload: %v", err)
	}

	select {
	case s.svc.EventChan() <- evt:
		return &ingestv1.SubmitEventResponse{Accepted: true}, nil
	case <-ctx.Done():
		return nil, status.Error(codes.DeadlineExceeded, "context cancelled")
	}
}

func (s *ingestServiceImpl) FlagAccount(ctx context.Context, req *ingestv1.FlagAccountRequest) (*ingestv1.FlagAccountResponse, error) {
	callerID, err := uuid.Parse(req.CallerId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid caller_id: %v", err)
	}
	accountID, err := uuid.Parse(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	if err := s.svc.InjectAccountFlag(ctx, callerID, accountID, req.Blacklisted); err != nil {
		return nil, status.Errorf(codes.Internal, "inject flag: %v", err)
	}

	return &ingestv1.FlagAccountResponse{Accepted: true}, nil
}

func protoEventTypeToString(et eventsv1.EventType) string {
	switch et {
	case eventsv1.EventType_COLLATERAL_DEPOSIT:
		return "CollateralDeposit"
	case eventsv1.EventType_COLLATERAL_WITHDRAW:
		return "CollateralWithdraw"
	case eventsv1.EventType_COLLATERAL_STAKE:
		return "CollateralStake"
	case eventsv1.EventType_COLLATERAL_UNSTAKE:
		return "CollateralUnstake"
	case eventsv1.EventType_SAVINGS_DEPOSIT:
		return "SavingsDeposit"
	case eventsv1.EventType_SAVINGS_WITHDRAW:
		return "SavingsWithdraw"
	case eventsv1.EventType_LOAN_BORROW:
		return "LoanBorrow"
	case eventsv1.EventType_LOAN_REPAY:
		return "LoanRepay"
	case eventsv1.EventType_LOAN_EXTEND:
		return "LoanExtend"
	case eventsv1.EventType_LOAN_TRANSFER:
		return "LoanTransfer"
	case eventsv1.EventType_LIQUIDATE:
		return "Liquidate"
	case eventsv1.EventType_PARTIAL_LIQUIDATE:
		return "PartialLiquidate"
	case eventsv1.EventType_REWARD_CLAIM:
		return "RewardClaim"
	case eventsv1.EventType_REWARD_COMPOUND:
		return "RewardCompound"
	case eventsv1.EventType_FIXED_DEPOSIT_CREATE:
		return "FixedDepositCreate"
	case eventsv1.EventType_FIXED_DEPOSIT_WITHDRAW:
		return "FixedDepositWithdraw"
	case eventsv1.EventType_PARAM_UPDATE:
		return "ParamUpdate"
	case eventsv1.EventType_ACCOUNT_FLAG_UPDATE:
		return "AccountFlagUpdate"
	default:
		return ""
	}
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	db           *sql.DB
	snapMgr      *persistence.SnapshotManager
	queryService *query.QueryService
	startTime    time.Time
}

func (s *adminServiceImpl) TakeSnapshot(ctx context.Context, req *adminv1.TakeSnapshotRequest) (*adminv1.TakeSnapshotResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}
	// The core takes the actual snapshot on its next tick; the sequence
	// returned here tells the operator which events it will cover.
	return &adminv1.TakeSnapshotResponse{Sequence: latestSeq}, nil
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.RebuildProjections(ctx, s.db); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{
		Started: true,
		TaskId:  "rebuild-sync",
	}, nil
}

func (s *adminServiceImpl) GetEventLogInfo(ctx context.Context, req *adminv1.GetEventLogInfoRequest) (*adminv1.GetEventLogInfoResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}

	return &adminv1.GetEventLogInfoResponse{
		LastSequence: latestSeq,
	}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}

	if !report.IsHealthy {
		if len(report.HashChainBreaks) > 0 {
			resp.FirstMismatchSequence = report.HashChainBreaks[0]
		}
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, global imbalance %d",
			len(report.HashChainBreaks), report.Imbalance)
	}

	return resp, nil
}

// ============================================================================
// Helpers
// ============================================================================

func requireAccountID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}
	return id, nil
}
