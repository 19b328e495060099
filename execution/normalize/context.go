package normalize

import "context"

type reportKey struct{}

// WithReport returns a copy of ctx carrying the report, for stages that need to
// know which rules fired on their input.
func WithReport(ctx context.Context, r Report) context.Context {
	return context.WithValue(ctx, reportKey{}, r)
}

// ReportFrom returns the report stored by WithReport.
func ReportFrom(ctx context.Context) (Report, bool) {
	r, ok := ctx.Value(reportKey{}).(Report)
	return r, ok
}
