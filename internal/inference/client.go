// Package inference wraps the gRPC connection to the Python inference
// service, which owns the frozen transformer and the LLM rubric judge.
package inference

import (
	"context"
	"fmt"

	pb "github.com/ArthurConmy/SAE-TS/gen/steeringpb"
	"github.com/ArthurConmy/SAE-TS/internal/steer"
	"github.com/ArthurConmy/SAE-TS/internal/sweep"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct

// Client wraps the gRPC connection to the steering inference service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SteeringServiceClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the inference gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSteeringServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.SteeringServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion constructor

// #region generate

// Generate samples nSamples independent completions of prompt with
// scale * vec added at the hook point during generation.
func (c *Client) Generate(ctx context.Context, prompt string, hook steer.HookPoint, vec steer.Vector, scale float32, nSamples, maxNewTokens int) ([]string, error) {
	resp, err := c.client.Generate(ctx, &pb.GenerateRequest{
		Prompt:       prompt,
		HookPoint:    string(hook),
		Steer:        vec,
		Scale:        scale,
		NSamples:     int32(nSamples),
		MaxNewTokens: int32(maxNewTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("generate rpc: %w", err)
	}
	return resp.Texts, nil
}

// #endregion generate

// #region mean-activations

// MeanActivations returns the mean residual stream activation over a text
// set at the given layer.
func (c *Client) MeanActivations(ctx context.Context, texts []string, layer int) ([]float32, error) {
	resp, err := c.client.MeanActivations(ctx, &pb.MeanActivationsRequest{
		Texts: texts,
		Layer: int32(layer),
	})
	if err != nil {
		return nil, fmt.Errorf("mean activations rpc: %w", err)
	}
	return resp.Activation, nil
}

// #endregion mean-activations

// #region rate

// Rate scores a text batch against one rubric criterion. Per-sample judge
// failures come back as ratings with a non-empty Err and a best-effort score.
func (c *Client) Rate(ctx context.Context, texts []string, criterion, prompt string) ([]sweep.Rating, error) {
	resp, err := c.client.Rate(ctx, &pb.RateRequest{
		Texts:     texts,
		Criterion: criterion,
		Prompt:    prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("rate rpc: %w", err)
	}

	ratings := make([]sweep.Rating, len(resp.Ratings))
	for i, r := range resp.Ratings {
		ratings[i] = sweep.Rating{
			Raw: float64(r.Score),
			Err: r.Error,
		}
	}
	return ratings, nil
}

// #endregion rate
