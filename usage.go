package docsum

import "context"

// UsageService tracks how many documents have been checked. The count is
// owned by whichever host wires the service in; the engine itself never
// holds process-wide state.
type UsageService interface {
	// AddUsage records n additional documents checked and returns the new
	// running total.
	AddUsage(ctx context.Context, n int) (int, error)

	// Usage returns the running total of documents checked.
	Usage(ctx context.Context) (int, error)
}
