package schema

// Built-in rule sets for the platform's documented template layouts.

var genericNumbers = []string{
	"GENERICNUMBER1", "GENERICNUMBER2", "GENERICNUMBER3",
	"GENERICNUMBER4", "GENERICNUMBER5", "GENERICNUMBER6",
}

var genericDates = []string{
	"GENERICDATE1", "GENERICDATE2", "GENERICDATE3",
	"GENERICDATE4", "GENERICDATE5", "GENERICDATE6",
}

var genericBooleans = []string{
	"GENERICBOOLEAN1", "GENERICBOOLEAN2", "GENERICBOOLEAN3",
	"GENERICBOOLEAN4", "GENERICBOOLEAN5", "GENERICBOOLEAN6",
}

func init() {
	Register(Template{
		Tag:         "TXSTA",
		Description: "Transaction staging export",
		PrimaryKey: []string{
			"ORDERID",
			"LINENUMBER",
			"SUBLINENUMBER",
			"EVENTTYPEID",
		},
		Required: []string{
			"VALUE",
			"UNITTYPEFORVALUE",
			"COMPENSATIONDATE",
		},
		Numbers: append([]string{"VALUE", "UNITVALUE"}, genericNumbers...),
		Dates: append([]string{
			"ACCOUNTINGDATE",
			"COMPENSATIONDATE",
		}, genericDates...),
		Booleans:     genericBooleans,
		PairTag:      "TXTA",
		PairKeyWidth: 4,
	})

	Register(Template{
		Tag:         "TXTA",
		Description: "Transaction assignment export",
		PrimaryKey: []string{
			"ORDERID",
			"LINENUMBER",
			"SUBLINENUMBER",
			"EVENTTYPEID",
		},
		// An assignment names a payee, a position or a title. The
		// assignment columns extend the uniqueness tuple since one
		// transaction line may carry several assignments.
		AnyOf: []string{
			"PAYEEID",
			"POSITIONNAME",
			"TITLENAME",
		},
		Dependents: map[string]string{
			"PAYEEID": "PAYEETYPE",
		},
		Numbers:  genericNumbers,
		Dates:    genericDates,
		Booleans: genericBooleans,
		UniqueExtra: []string{
			"PAYEEID",
			"PAYEETYPE",
			"POSITIONNAME",
			"TITLENAME",
		},
	})

	Register(Template{
		Tag:         "OGPO",
		Description: "Organization position export",
		PrimaryKey: []string{
			"POSITIONNAME",
		},
		Required: []string{
			"EFFECTIVESTARTDATE",
			"TITLENAME",
		},
		Numbers: append([]string{"TARGETCOMPENSATION"}, genericNumbers...),
		Dates: append(append([]string{
			"EFFECTIVESTARTDATE",
			"EFFECTIVEENDDATE",
		}, genericDates...),
			"CREDITSTARTDATE",
			"CREDITENDDATE",
			"PROCESSINGSTARTDATE",
			"PROCESSINGENDDATE",
		),
		Booleans: genericBooleans,
	})
}
