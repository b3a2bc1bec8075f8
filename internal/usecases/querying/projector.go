package querying

// Slot é uma posição de data: []any com os registros projetados ou *BucketError
type Slot struct {
	Value         any
	UpstreamTotal int // TotalResults informado pelo upstream para o dia
}

// Project aplica a projeção a cada bucket. Um campo ausente invalida apenas o próprio bucket.
func Project(results []BucketResult, path *PropertyPath) []Slot {
	slots := make([]Slot, len(results))

	for i, r := range results {
		if r.Err != nil {
			slots[i] = Slot{Value: r.Err}
			continue
		}

		slot := Slot{}
		if r.Response != nil {
			slot.UpstreamTotal = r.Response.PaginationResponse.TotalResults
		}
		slot.Value = projectBucket(r, path)

		slots[i] = slot
	}

	return slots
}

func projectBucket(r BucketResult, path *PropertyPath) any {
	if r.Response == nil {
		return []any{}
	}

	sales := r.Response.Sales

	if path == nil {
		values := make([]any, 0, len(sales))
		for _, sale := range sales {
			values = append(values, sale)
		}
		return values
	}

	values, ok := path.Extract(sales)
	if !ok {
		return newMissingFieldError(r.Bucket, path.Field)
	}

	return values
}
