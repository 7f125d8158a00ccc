package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CWSpear/stumpy/internal/metrics"
)

func TestRecordHelpers(t *testing.T) {
	before := testutil.ToFloat64(metrics.EvaluationsTotal.WithLabelValues(metrics.KindBoss, "true"))
	metrics.RecordBoss(true)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.EvaluationsTotal.WithLabelValues(metrics.KindBoss, "true")), 0.001)

	before = testutil.ToFloat64(metrics.MutationsTotal.WithLabelValues("set_item"))
	metrics.RecordMutation("set_item")
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.MutationsTotal.WithLabelValues("set_item")), 0.001)
}

func TestUnaryServerInterceptor(t *testing.T) {
	interceptor := metrics.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Fail"}
	counter := metrics.RPCsTotal.WithLabelValues(info.FullMethod, codes.NotFound.String())
	before := testutil.ToFloat64(counter)

	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	require.Error(t, err)
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0.001)
}
