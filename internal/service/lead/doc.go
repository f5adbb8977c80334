// Package lead generates, evaluates, and stores prospective contacts.
//
// Generator builds synthetic leads from fixed vocabularies, Scraper wraps it
// in the simulated crawl used by the API, and Evaluator runs each lead past
// the language model one at a time. Service ties these to a Repository.
package lead
