// internal/catalog/file_source.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	apperrors "realty-concierge/internal/common/errors"
	"realty-concierge/internal/models"
)

// listingSchema validates each catalog entry before it is accepted. Price
// must be strictly positive; type and location are required.
const listingSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["type", "price", "location"],
		"properties": {
			"id":       {"type": "string"},
			"type":     {"type": "string", "minLength": 1},
			"location": {"type": "string", "minLength": 1},
			"price":    {"type": "number", "exclusiveMinimum": 0},
			"bedrooms": {"type": "integer", "minimum": 0},
			"areaSqft": {"type": "integer", "minimum": 0}
		}
	}
}`

// LoadFile reads a JSON catalog file, validates it, and returns a Catalog
// preserving file order.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewCatalogSourceFailedError("file", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(listingSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, apperrors.NewCatalogInvalidError(fmt.Sprintf("%v", errs))
	}

	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}

	return New(listings), nil
}
