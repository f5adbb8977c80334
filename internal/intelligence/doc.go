// Package intelligence produces the market intelligence report: competitor
// landscape, regional opportunities, industry trends and recommended
// actions, generated by the language model and grounded with recent feed
// headlines. It also derives the headline KPIs shown beside the report.
package intelligence
