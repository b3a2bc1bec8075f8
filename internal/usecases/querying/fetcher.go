package querying

import (
	"context"

	mindbodydomain "github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/domain"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/pkg/log"
)

// BucketResult é o resultado de um bucket: Response em caso de sucesso, Err caso contrário
type BucketResult struct {
	Bucket   domain.DayBucket
	Response *mindbodydomain.SalesResponse
	Err      *BucketError
}

// FetchFunc busca um único bucket. Nunca retorna erro: falhas viram BucketResult.Err.
type FetchFunc func(ctx context.Context, bucket domain.DayBucket) BucketResult

func (s *Service) fetcher(creds domain.Credentials, page domain.Pagination) FetchFunc {
	return func(ctx context.Context, bucket domain.DayBucket) BucketResult {
		resp, err := s.integrator.GetSalesByDay(ctx, creds, page, bucket)
		if err != nil {
			bucketErr := newUpstreamError(bucket, err)

			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"day":  bucketErr.Day,
				"kind": bucketErr.Kind.String(),
			}).Warn("sales: falha ao buscar vendas do dia")

			return BucketResult{Bucket: bucket, Err: bucketErr}
		}

		if resp == nil {
			resp = &mindbodydomain.SalesResponse{}
		}

		return BucketResult{Bucket: bucket, Response: resp}
	}
}
