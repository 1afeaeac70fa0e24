package config

import (
	"github.com/quentinmace/datagrid/internal/grid"
)

// Config is the full datagrid configuration document.
type Config struct {
	Version string         `yaml:"version" validate:"required"`
	Name    string         `yaml:"name" validate:"required,min=1,max=100"`
	Dataset string         `yaml:"dataset" validate:"required"`
	Columns []ColumnConfig `yaml:"columns" validate:"required,min=1,dive"`
	Options OptionsConfig  `yaml:"options,omitempty"`
}

// ColumnConfig describes one grid column.
type ColumnConfig struct {
	Title      string `yaml:"title" validate:"required"`
	Type       string `yaml:"type,omitempty" validate:"omitempty,oneof=text date"`
	DateFormat string `yaml:"date_format,omitempty" validate:"omitempty,date_format"`
	Sortable   *bool  `yaml:"sortable,omitempty"`
}

// OptionsConfig holds the grid's behavioural options.
type OptionsConfig struct {
	Sortable        *bool  `yaml:"sortable,omitempty"`
	SortOnLoad      bool   `yaml:"sort_on_load,omitempty"`
	SortColumn      int    `yaml:"sort_column,omitempty" validate:"omitempty,min=0"`
	Order           string `yaml:"order,omitempty" validate:"omitempty,oneof=ASC DESC"`
	Paginate        bool   `yaml:"paginate,omitempty"`
	ItemsPerPage    int    `yaml:"items_per_page,omitempty" validate:"omitempty,min=1,max=1000"`
	SavePreferences bool   `yaml:"save_preferences,omitempty"`
}

// GridColumns converts the column configuration to the grid's column set.
// Columns are sortable unless explicitly disabled.
func (c *Config) GridColumns() []grid.Column {
	columns := make([]grid.Column, 0, len(c.Columns))
	for _, col := range c.Columns {
		sortable := true
		if col.Sortable != nil {
			sortable = *col.Sortable
		}
		columnType := grid.ColumnText
		if col.Type == "date" {
			columnType = grid.ColumnDate
		}
		columns = append(columns, grid.Column{
			Title:      col.Title,
			Sortable:   sortable,
			Type:       columnType,
			DateFormat: grid.DateFormat(col.DateFormat),
		})
	}
	return columns
}

// GridOptions converts the options block to the grid's options, filling in
// defaults for anything left unset.
func (c *Config) GridOptions() grid.Options {
	opts := grid.DefaultOptions()
	if c.Options.Sortable != nil {
		opts.Sortable = *c.Options.Sortable
	}
	opts.SortOnLoad = c.Options.SortOnLoad
	opts.SortColumn = c.Options.SortColumn
	if c.Options.Order != "" {
		opts.Order = grid.Order(c.Options.Order)
	}
	opts.Paginate = c.Options.Paginate
	if c.Options.ItemsPerPage > 0 {
		opts.ItemsPerPage = c.Options.ItemsPerPage
	}
	opts.SavePreferences = c.Options.SavePreferences
	return opts
}
