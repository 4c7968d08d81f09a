package inference

import (
	"context"
	"errors"
	"testing"

	pb "github.com/ArthurConmy/SAE-TS/gen/steeringpb"
	"github.com/ArthurConmy/SAE-TS/internal/steer"
	"google.golang.org/grpc"
)

// #region mock

type mockSteeringService struct {
	pb.SteeringServiceClient

	generateReq  *pb.GenerateRequest
	generateResp *pb.GenerateResponse
	generateErr  error

	meanResp *pb.MeanActivationsResponse
	meanErr  error

	rateResp *pb.RateResponse
	rateErr  error
}

func (m *mockSteeringService) Generate(_ context.Context, req *pb.GenerateRequest, _ ...grpc.CallOption) (*pb.GenerateResponse, error) {
	m.generateReq = req
	return m.generateResp, m.generateErr
}

func (m *mockSteeringService) MeanActivations(_ context.Context, _ *pb.MeanActivationsRequest, _ ...grpc.CallOption) (*pb.MeanActivationsResponse, error) {
	return m.meanResp, m.meanErr
}

func (m *mockSteeringService) Rate(_ context.Context, _ *pb.RateRequest, _ ...grpc.CallOption) (*pb.RateResponse, error) {
	return m.rateResp, m.rateErr
}

// #endregion mock

func TestGenerateForwardsInjection(t *testing.T) {
	mock := &mockSteeringService{
		generateResp: &pb.GenerateResponse{Texts: []string{"one", "two"}},
	}
	client := NewClientWithService(mock)

	texts, err := client.Generate(context.Background(), "I think", steer.ResidHook(12), steer.Vector{0.6, 0.8}, 140, 2, 32)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(texts) != 2 || texts[0] != "one" {
		t.Fatalf("unexpected texts: %v", texts)
	}

	req := mock.generateReq
	if req.HookPoint != "blocks.12.hook_resid_post" {
		t.Fatalf("unexpected hook point: %q", req.HookPoint)
	}
	if req.Scale != 140 || req.NSamples != 2 {
		t.Fatalf("unexpected scale/samples: %v %v", req.Scale, req.NSamples)
	}
	if len(req.Steer) != 2 || req.Steer[1] != 0.8 {
		t.Fatalf("unexpected steer vector: %v", req.Steer)
	}
}

func TestGenerateError(t *testing.T) {
	mock := &mockSteeringService{generateErr: errors.New("model offline")}
	client := NewClientWithService(mock)

	if _, err := client.Generate(context.Background(), "p", "hp", nil, 0, 1, 16); err == nil {
		t.Fatal("expected rpc error")
	}
}

func TestMeanActivations(t *testing.T) {
	mock := &mockSteeringService{
		meanResp: &pb.MeanActivationsResponse{Activation: []float32{1, 2, 3}},
	}
	client := NewClientWithService(mock)

	acts, err := client.MeanActivations(context.Background(), []string{"a"}, 4)
	if err != nil {
		t.Fatalf("MeanActivations: %v", err)
	}
	if len(acts) != 3 || acts[2] != 3 {
		t.Fatalf("unexpected activations: %v", acts)
	}
}

func TestRateBestEffortErrors(t *testing.T) {
	mock := &mockSteeringService{
		rateResp: &pb.RateResponse{Ratings: []*pb.Rating{
			{Score: 7},
			{Score: 1, Error: "judge parse failure"},
		}},
	}
	client := NewClientWithService(mock)

	ratings, err := client.Rate(context.Background(), []string{"a", "b"}, "crit", "prompt")
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}
	if ratings[0].Raw != 7 || ratings[0].Err != "" {
		t.Fatalf("unexpected first rating: %+v", ratings[0])
	}
	if ratings[1].Err == "" {
		t.Fatal("per-sample error should be carried through")
	}
}

func TestRateError(t *testing.T) {
	mock := &mockSteeringService{rateErr: errors.New("judge offline")}
	client := NewClientWithService(mock)

	if _, err := client.Rate(context.Background(), []string{"a"}, "crit", "prompt"); err == nil {
		t.Fatal("expected rpc error")
	}
}
