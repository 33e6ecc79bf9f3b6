// Package product provides the cannabis product catalog entities: the
// CannabisProduct aggregate and the shared commerce vocabularies for unit of
// measure, product category, and product status.
//
// Key business rules:
//   - Products must have a SKU and a name; the GTIN, when present, is a
//     validated GS1 identifier
//   - Product status follows an explicit transition table; Discontinued is
//     terminal
//   - Potency values (THC/CBD percentages) are exact decimals between 0 and 100
package product
