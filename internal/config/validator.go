package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	datagriderrors "github.com/quentinmace/datagrid/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	dateFormats = map[string]struct{}{"DMY": {}, "MDY": {}, "YMD": {}, "YDM": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("date_format", func(fl validator.FieldLevel) bool {
			_, ok := dateFormats[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return datagriderrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for i, col := range cfg.Columns {
		if col.Type == "date" && col.DateFormat == "" {
			return datagriderrors.NewValidationError(
				fieldForColumn(i, "date_format"),
				"required when type is date",
				nil,
			)
		}
		if col.Type != "date" && col.DateFormat != "" {
			return datagriderrors.NewValidationError(
				fieldForColumn(i, "date_format"),
				"only valid on date columns",
				nil,
			)
		}
	}

	if cfg.Options.SortOnLoad && cfg.Options.SortColumn >= len(cfg.Columns) {
		return datagriderrors.NewValidationError(
			"options.sort_column",
			fmt.Sprintf("index %d out of range for %d columns", cfg.Options.SortColumn, len(cfg.Columns)),
			nil,
		)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return datagriderrors.NewValidationError(
			first.Namespace(),
			fmt.Sprintf("failed %q validation", first.Tag()),
			err,
		)
	}

	return datagriderrors.NewValidationError("config", err.Error(), err)
}

func fieldForColumn(index int, field string) string {
	return fmt.Sprintf("columns[%d].%s", index, field)
}
