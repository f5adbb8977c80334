// Package analytics produces campaign performance analyses, root-cause
// issues, simulated predictions, optimization suggestions and the
// cross-campaign optimization report.
//
// All reference data (regional rows, the weekly series, benchmarks and the
// dashboard summary) is fixed. Randomness comes from an injected
// simulate.Source so tests can pin every draw.
package analytics
