package rdf

import "fmt"

func formatInt(value int64) string {
	return fmt.Sprintf("%d", value)
}

func formatDouble(value float64) string {
	return fmt.Sprintf("%g", value)
}

func formatBool(value bool) string {
	return fmt.Sprintf("%t", value)
}
