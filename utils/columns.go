package utils

import (
	"fmt"
	"reflect"
)

// ColumnList builds the select column list of a db model struct from its `db`
// tags. An optional table name prefixes every column.
func ColumnList[Model any](tableName ...string) []string {
	var model Model
	modelType := reflect.TypeOf(model)

	prefix := ""
	if len(tableName) > 0 {
		prefix = tableName[0] + "."
	}

	columns := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		tag := modelType.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, fmt.Sprintf("%s%s", prefix, tag))
	}
	return columns
}
