package huntflow

import (
	"github.com/mitchellh/mapstructure"

	"github.com/spigell/hf-uploader/internal/normalize"
)

const vacanciesPath = "vacancies"

type Vacancies struct {
	Items []*Vacancy
}

type Vacancy struct {
	ID       int    `json:"id"`
	Position string `json:"position"`
}

// GetVacancies returns the full vacancy catalog for the organization,
// drained across all pages. The catalog is fetched once per run and is
// read-only afterwards.
func (c *Client) GetVacancies() (*Vacancies, error) {
	items, err := c.GetItems(vacanciesPath)
	if err != nil {
		return nil, err
	}

	var vacancies []*Vacancy

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &vacancies,
		TagName:  "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(items); err != nil {
		return nil, err
	}

	return &Vacancies{
		Items: vacancies,
	}, nil
}

func (v *Vacancies) Len() int {
	return len(v.Items)
}

// FindIDByPosition returns the id of the first vacancy whose normalized
// position equals the normalized name, or nil when no vacancy matches.
func (v *Vacancies) FindIDByPosition(name string) *int {
	key := normalize.Key(name)

	for _, vacancy := range v.Items {
		if normalize.Key(vacancy.Position) != key {
			continue
		}

		id := vacancy.ID
		return &id
	}

	return nil
}

func (v *Vacancies) Positions() []string {
	positions := make([]string, 0, len(v.Items))

	for _, vacancy := range v.Items {
		positions = append(positions, vacancy.Position)
	}

	return positions
}
