// Package finreport turns a spreadsheet of financial statements into a
// period-indexed set of line items, computes standard financial ratios from
// them and provides the figures reports are made of.
//
// The core functionalities include:
//   - Table Reading: decoding the first sheet of .xlsx, .xls or .csv files into
//     an in-memory Table of text, number and blank cells.
//   - Period Detection: finding reporting dates (31.12.2023, 2023-12-31,
//     31/12/2023, "за 2023") in column headers.
//   - Line Item Classification: mapping free-text row labels to canonical
//     line items ("total assets", "revenue", ...) through an ordered keyword
//     Dictionary, embedded as dictionary.yaml.
//   - Extraction: building a Dataset of line item values per period.
//   - Ratios: liquidity, profitability, stability and activity ratios of a
//     period, computed best-effort into a RatioSet.
//   - Analytics: trends, forecasts, liquidity tiers and industry benchmarks.
//   - Sessions: the per-user context holding the loaded Dataset and the
//     last report, persisted as JSON.
//
// This package serves as the foundational logic for the `frs` command-line
// tool. Reports themselves are rendered by the renderer package.
package finreport
