package dataset

// Columns names the header cells holding each logical field.
type Columns struct {
	Name           string `yaml:"name"`
	Region         string `yaml:"region"`
	HappinessRank  string `yaml:"happiness_rank"`
	HappinessScore string `yaml:"happiness_score"`
	GDP            string `yaml:"gdp"`
	Health         string `yaml:"health"`
	Family         string `yaml:"family"`
	Corruption     string `yaml:"corruption"`
}

// DefaultColumns matches the header of the bundled sample dataset.
func DefaultColumns() Columns {
	return Columns{
		Name:           "Country",
		Region:         "Region",
		HappinessRank:  "HappinessRank",
		HappinessScore: "HappinessScore",
		GDP:            "GDP",
		Health:         "Health",
		Family:         "Family",
		Corruption:     "GovernmentCorruption",
	}
}

// Kaggle2015Columns matches the header of the published 2015 World
// Happiness Report CSV.
func Kaggle2015Columns() Columns {
	return Columns{
		Name:           "Country",
		Region:         "Region",
		HappinessRank:  "Happiness Rank",
		HappinessScore: "Happiness Score",
		GDP:            "Economy (GDP per Capita)",
		Health:         "Health (Life Expectancy)",
		Family:         "Family",
		Corruption:     "Trust (Government Corruption)",
	}
}

// merged fills empty entries of c from DefaultColumns.
func (c Columns) merged() Columns {
	d := DefaultColumns()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	return Columns{
		Name:           pick(c.Name, d.Name),
		Region:         pick(c.Region, d.Region),
		HappinessRank:  pick(c.HappinessRank, d.HappinessRank),
		HappinessScore: pick(c.HappinessScore, d.HappinessScore),
		GDP:            pick(c.GDP, d.GDP),
		Health:         pick(c.Health, d.Health),
		Family:         pick(c.Family, d.Family),
		Corruption:     pick(c.Corruption, d.Corruption),
	}
}

// field pairs a logical field name with its header cell.
type field struct {
	logical string
	header  string
}

// fields lists the eight fields in dataset order.
func (c Columns) fields() [8]field {
	return [8]field{
		{"Name", c.Name},
		{"Region", c.Region},
		{"HappinessRank", c.HappinessRank},
		{"HappinessScore", c.HappinessScore},
		{"GDP", c.GDP},
		{"Health", c.Health},
		{"Family", c.Family},
		{"Corruption", c.Corruption},
	}
}
