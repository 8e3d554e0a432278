package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"keyword_list.schema.json",
	"match_report.schema.json",
}

func TestSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_LoadAsJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			absPath, err := filepath.Abs(schemaFile)
			require.NoError(t, err)

			loader := gojsonschema.NewReferenceLoader("file://" + absPath)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}
