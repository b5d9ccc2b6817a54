// Package hclutil collects small helpers over the hashicorp/hcl/v2 API that
// the descriptor loader and resolver share.
package hclutil
