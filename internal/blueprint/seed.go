package blueprint

// DefaultExam is the exam used when none is configured.
const DefaultExam = "CFP"

// builtin returns the blueprints shipped with the binary.
func builtin() []Blueprint {
	return []Blueprint{
		{
			Exam: "CFP",
			Name: "CFP Certification Exam",
			Entries: []Entry{
				{Domain: "PRO", Name: "Professional Conduct and Regulation", Weight: 8},
				{Domain: "GEN", Name: "General Principles of Financial Planning", Weight: 18},
				{Domain: "RISK", Name: "Risk Management, Insurance and Employee Benefits", Weight: 11},
				{Domain: "INV", Name: "Investment Planning", Weight: 17},
				{Domain: "TAX", Name: "Tax Planning", Weight: 14},
				{Domain: "RET", Name: "Retirement Savings and Income Planning", Weight: 15},
				{Domain: "EST", Name: "Estate Planning", Weight: 10},
				{Domain: "PSY", Name: "Psychology of Financial Planning", Weight: 7},
			},
		},
		{
			Exam: "S65",
			Name: "Series 65 Uniform Investment Adviser Law Exam",
			Entries: []Entry{
				{Domain: "ECON", Name: "Economic Factors and Business Information", Weight: 15},
				{Domain: "VEH", Name: "Investment Vehicle Characteristics", Weight: 25},
				{Domain: "REC", Name: "Client Investment Recommendations and Strategies", Weight: 30},
				{Domain: "LAW", Name: "Laws, Regulations, and Guidelines", Weight: 30},
			},
		},
	}
}
