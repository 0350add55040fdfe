// Package lex mediates conversation traffic between the local message
// format and the AWS Lex runtime.
package lex

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimeservice"

	"github.com/voicebotics/lex-bridge/internal/params"
)

// RuntimeClient is the single capability the interactor needs from the Lex
// runtime. *lexruntimeservice.Client satisfies it; tests substitute a
// deterministic double.
type RuntimeClient interface {
	PostContent(ctx context.Context, in *lexruntimeservice.PostContentInput, optFns ...func(*lexruntimeservice.Options)) (*lexruntimeservice.PostContentOutput, error)
}

// AWS client transport tuning keys.
const (
	RegionKey           = "aws_client_configuration.region"
	ConnectTimeoutMsKey = "aws_client_configuration.connect_timeout_ms"
	RequestTimeoutMsKey = "aws_client_configuration.request_timeout_ms"
)

// NewRuntimeClient builds the real Lex runtime client. Region and timeout
// parameters are handed to the AWS client without interpretation; absent
// keys fall back to the SDK defaults.
func NewRuntimeClient(ctx context.Context, p params.Reader) (*lexruntimeservice.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if region, ok := p.ReadString(RegionKey); ok {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	httpClient := &http.Client{}
	if ms, ok := p.ReadInt(RequestTimeoutMsKey); ok {
		httpClient.Timeout = time.Duration(ms) * time.Millisecond
	}
	if ms, ok := p.ReadInt(ConnectTimeoutMsKey); ok {
		httpClient.Transport = &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: time.Duration(ms) * time.Millisecond,
			}).DialContext,
		}
	}
	opts = append(opts, awsconfig.WithHTTPClient(httpClient))

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return lexruntimeservice.NewFromConfig(cfg), nil
}
