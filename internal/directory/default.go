package directory

import "github.com/scholarsportal/askdata/internal/types"

// Default returns the bundled consortium directory, used when no
// directory file is configured. Queue naming follows the service
// conventions: "-fr" French, "-txt" SMS, "-proactive" proactive widget.
func Default() *Directory {
	return New([]types.Institution{
		{
			ShortName:      "toronto",
			FullName:       "University of Toronto",
			OperatorSuffix: "uot",
			Queues: []string{
				"toronto-st-george",
				"toronto-st-george-fr",
				"toronto-st-george-txt",
				"toronto-mississauga",
				"toronto-scarborough",
				"toronto-st-george-proactive",
			},
		},
		{
			ShortName:      "western",
			FullName:       "Western University",
			OperatorSuffix: "western",
			Queues:         []string{"western", "western-fr", "western-txt"},
		},
		{
			ShortName:      "queens",
			FullName:       "Queen's University",
			OperatorSuffix: "queens",
			Queues:         []string{"queens", "queens-proactive"},
		},
		{
			ShortName:      "ottawa",
			FullName:       "University of Ottawa",
			OperatorSuffix: "ottawa",
			Queues:         []string{"ottawa", "ottawa-fr"},
		},
		{
			ShortName:      "york",
			FullName:       "York University",
			OperatorSuffix: "york",
			Queues:         []string{"york", "york-fr", "york-glendon"},
		},
		{
			ShortName:      "mcmaster",
			FullName:       "McMaster University",
			OperatorSuffix: "mcmaster",
			Queues:         []string{"mcmaster", "mcmaster-txt"},
		},
		{
			ShortName:      "guelph",
			FullName:       "University of Guelph",
			OperatorSuffix: "guelph",
			Queues:         []string{"guelph"},
		},
		{
			ShortName:      "carleton",
			FullName:       "Carleton University",
			OperatorSuffix: "carleton",
			Queues:         []string{"carleton", "carleton-fr"},
		},
		{
			ShortName:      "waterloo",
			FullName:       "University of Waterloo",
			OperatorSuffix: "waterloo",
			Queues:         []string{"waterloo"},
		},
		{
			ShortName:      "brock",
			FullName:       "Brock University",
			OperatorSuffix: "brock",
			Queues:         []string{"brock"},
		},
		{
			// Registered for training purposes; carries no live queues
			// and is skipped by the partitioner.
			ShortName:      "practice",
			FullName:       "Practice Institution",
			OperatorSuffix: "practice",
			Queues:         nil,
		},
	})
}
