package tables

// Federal regular tax parameters, single filing status.
var regularTable = map[int]RegularParameters{
	2012: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(8700, "0.15"),
			br(35350, "0.25"),
			br(85650, "0.28"),
			br(178650, "0.33"),
			br(388350, "0.35"),
		},
		QDCGThresholds: []Bracket{
			br(35350, "0"),
			br(Unbounded, "0.15"),
		},
		LimitThreshold:        dollars(Unbounded),
		Exemption:             dollars(3800),
		StandardDeduction:     dollars(5950),
		SocialSecurityMaxWage: dollars(110100),
		SocialSecurityTaxRate: rate("0.052"),
	},
	2013: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(8925, "0.15"),
			br(36250, "0.25"),
			br(87850, "0.28"),
			br(183250, "0.33"),
			br(398350, "0.35"),
			br(400000, "0.396"),
		},
		QDCGThresholds: []Bracket{
			br(36250, "0"),
			br(400000, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(250000),
		Exemption:             dollars(3900),
		StandardDeduction:     dollars(6100),
		SocialSecurityMaxWage: dollars(113700),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2014: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9075, "0.15"),
			br(36900, "0.25"),
			br(89350, "0.28"),
			br(186350, "0.33"),
			br(405100, "0.35"),
			br(406750, "0.396"),
		},
		QDCGThresholds: []Bracket{
			br(36900, "0"),
			br(406750, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(254200),
		Exemption:             dollars(3950),
		StandardDeduction:     dollars(6200),
		SocialSecurityMaxWage: dollars(117000),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2015: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9225, "0.15"),
			br(37450, "0.25"),
			br(90750, "0.28"),
			br(189300, "0.33"),
			br(411500, "0.35"),
			br(413200, "0.396"),
		},
		QDCGThresholds: []Bracket{
			br(37450, "0"),
			br(413200, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(258250),
		Exemption:             dollars(4000),
		StandardDeduction:     dollars(6300),
		SocialSecurityMaxWage: dollars(118500),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2016: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9275, "0.15"),
			br(37650, "0.25"),
			br(91150, "0.28"),
			br(190150, "0.33"),
			br(413350, "0.35"),
			br(415050, "0.396"),
		},
		QDCGThresholds: []Bracket{
			br(37650, "0"),
			br(415050, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(259400),
		Exemption:             dollars(4050),
		StandardDeduction:     dollars(6300),
		SocialSecurityMaxWage: dollars(118500),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2017: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9325, "0.15"),
			br(37950, "0.25"),
			br(91900, "0.28"),
			br(191650, "0.33"),
			br(416700, "0.35"),
			br(418400, "0.396"),
		},
		QDCGThresholds: []Bracket{
			br(37950, "0"),
			br(418400, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(261500),
		Exemption:             dollars(4050),
		StandardDeduction:     dollars(6350),
		SocialSecurityMaxWage: dollars(127200),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2018: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9525, "0.12"),
			br(38700, "0.22"),
			br(82500, "0.24"),
			br(157500, "0.32"),
			br(200000, "0.35"),
			br(500000, "0.37"),
		},
		QDCGThresholds: []Bracket{
			br(38600, "0"),
			br(425800, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(Unbounded),
		Exemption:             dollars(0),
		StandardDeduction:     dollars(12000),
		SocialSecurityMaxWage: dollars(128400),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2019: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9700, "0.12"),
			br(39475, "0.22"),
			br(84200, "0.24"),
			br(160725, "0.32"),
			br(204100, "0.35"),
			br(510300, "0.37"),
		},
		QDCGThresholds: []Bracket{
			br(39375, "0"),
			br(434550, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(Unbounded),
		Exemption:             dollars(0),
		StandardDeduction:     dollars(12200),
		SocialSecurityMaxWage: dollars(132900),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2020: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9875, "0.12"),
			br(40125, "0.22"),
			br(85525, "0.24"),
			br(163300, "0.32"),
			br(207350, "0.35"),
			br(518400, "0.37"),
		},
		QDCGThresholds: []Bracket{
			br(40000, "0"),
			br(441450, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(Unbounded),
		Exemption:             dollars(0),
		StandardDeduction:     dollars(12400),
		SocialSecurityMaxWage: dollars(137700),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2021: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(9950, "0.12"),
			br(40525, "0.22"),
			br(86375, "0.24"),
			br(164925, "0.32"),
			br(209425, "0.35"),
			br(523600, "0.37"),
		},
		QDCGThresholds: []Bracket{
			br(40400, "0"),
			br(445850, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(Unbounded),
		Exemption:             dollars(0),
		StandardDeduction:     dollars(12550),
		SocialSecurityMaxWage: dollars(142800),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2022: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(10275, "0.12"),
			br(41775, "0.22"),
			br(89075, "0.24"),
			br(170050, "0.32"),
			br(215950, "0.35"),
			br(539900, "0.37"),
		},
		QDCGThresholds: []Bracket{
			br(41675, "0"),
			br(459750, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(Unbounded),
		Exemption:             dollars(0),
		StandardDeduction:     dollars(12950),
		SocialSecurityMaxWage: dollars(147000),
		SocialSecurityTaxRate: rate("0.062"),
	},
	2023: {
		Brackets: []Bracket{
			br(0, "0.1"),
			br(11000, "0.12"),
			br(44725, "0.22"),
			br(95375, "0.24"),
			br(182100, "0.32"),
			br(231250, "0.35"),
			br(578125, "0.37"),
		},
		QDCGThresholds: []Bracket{
			br(44625, "0"),
			br(492300, "0.15"),
			br(Unbounded, "0.2"),
		},
		LimitThreshold:        dollars(Unbounded),
		Exemption:             dollars(0),
		StandardDeduction:     dollars(13850),
		SocialSecurityMaxWage: dollars(160200),
		SocialSecurityTaxRate: rate("0.062"),
	},
}

// Federal alternative minimum tax parameters. QDCG thresholds are shared with the regular table.
var amtTable = map[int]AMTParameters{
	2012: {
		Brackets:       []Bracket{br(0, "0.26"), br(175000, "0.28")},
		LimitThreshold: dollars(112500),
		Exemption:      dollars(50600),
	},
	2013: {
		Brackets:       []Bracket{br(0, "0.26"), br(179500, "0.28")},
		LimitThreshold: dollars(115400),
		Exemption:      dollars(51900),
	},
	2014: {
		Brackets:       []Bracket{br(0, "0.26"), br(182500, "0.28")},
		LimitThreshold: dollars(117300),
		Exemption:      dollars(52800),
	},
	2015: {
		Brackets:       []Bracket{br(0, "0.26"), br(185400, "0.28")},
		LimitThreshold: dollars(119200),
		Exemption:      dollars(53600),
	},
	2016: {
		Brackets:       []Bracket{br(0, "0.26"), br(186300, "0.28")},
		LimitThreshold: dollars(119700),
		Exemption:      dollars(53900),
	},
	2017: {
		Brackets:       []Bracket{br(0, "0.26"), br(187800, "0.28")},
		LimitThreshold: dollars(120700),
		Exemption:      dollars(54300),
	},
	2018: {
		Brackets:       []Bracket{br(0, "0.26"), br(191500, "0.28")},
		LimitThreshold: dollars(500000),
		Exemption:      dollars(70300),
	},
	2019: {
		Brackets:       []Bracket{br(0, "0.26"), br(194800, "0.28")},
		LimitThreshold: dollars(510300),
		Exemption:      dollars(71700),
	},
	2020: {
		Brackets:       []Bracket{br(0, "0.26"), br(197900, "0.28")},
		LimitThreshold: dollars(518400),
		Exemption:      dollars(72900),
	},
	2021: {
		Brackets:       []Bracket{br(0, "0.26"), br(199900, "0.28")},
		LimitThreshold: dollars(523600),
		Exemption:      dollars(73600),
	},
	2022: {
		Brackets:       []Bracket{br(0, "0.26"), br(206100, "0.28")},
		LimitThreshold: dollars(539900),
		Exemption:      dollars(75900),
	},
	2023: {
		Brackets:       []Bracket{br(0, "0.26"), br(220700, "0.28")},
		LimitThreshold: dollars(578150),
		Exemption:      dollars(81300),
	},
}

// State income tax parameters.
var stateTable = map[int]StateParameters{
	2012: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(7455, "0.02"),
			br(17676, "0.04"),
			br(27897, "0.06"),
			br(38726, "0.08"),
			br(48942, "0.093"),
			br(250000, "0.103"),
			br(300000, "0.113"),
			br(500000, "0.123"),
		},
		LimitThreshold:             dollars(169730),
		Exemption:                  dollars(104),
		StandardDeduction:          dollars(3841),
		DisabilityInsuranceMaxWage: dollars(95585),
		DisabilityInsuranceTaxRate: rate("0.01"),
	},
	2013: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(7582, "0.02"),
			br(17976, "0.04"),
			br(28371, "0.06"),
			br(39384, "0.08"),
			br(49774, "0.093"),
			br(254250, "0.103"),
			br(305100, "0.113"),
			br(508500, "0.123"),
		},
		LimitThreshold:             dollars(172615),
		Exemption:                  dollars(106),
		StandardDeduction:          dollars(3906),
		DisabilityInsuranceMaxWage: dollars(100880),
		DisabilityInsuranceTaxRate: rate("0.01"),
	},
	2014: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(7749, "0.02"),
			br(18371, "0.04"),
			br(28995, "0.06"),
			br(40250, "0.08"),
			br(50869, "0.093"),
			br(259844, "0.103"),
			br(311812, "0.113"),
			br(519687, "0.123"),
		},
		LimitThreshold:             dollars(176413),
		Exemption:                  dollars(108),
		StandardDeduction:          dollars(3992),
		DisabilityInsuranceMaxWage: dollars(101636),
		DisabilityInsuranceTaxRate: rate("0.009"),
	},
	2015: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(7850, "0.02"),
			br(18610, "0.04"),
			br(29372, "0.06"),
			br(40773, "0.08"),
			br(51530, "0.093"),
			br(263222, "0.103"),
			br(315866, "0.113"),
			br(526443, "0.123"),
		},
		LimitThreshold:             dollars(178706),
		Exemption:                  dollars(109),
		StandardDeduction:          dollars(4044),
		DisabilityInsuranceMaxWage: dollars(104378),
		DisabilityInsuranceTaxRate: rate("0.009"),
	},
	2016: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(8015, "0.02"),
			br(19001, "0.04"),
			br(29989, "0.06"),
			br(41629, "0.08"),
			br(52612, "0.093"),
			br(268750, "0.103"),
			br(322499, "0.113"),
			br(537498, "0.123"),
		},
		LimitThreshold:             dollars(182459),
		Exemption:                  dollars(111),
		StandardDeduction:          dollars(4129),
		DisabilityInsuranceMaxWage: dollars(106742),
		DisabilityInsuranceTaxRate: rate("0.009"),
	},
	2017: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(8223, "0.02"),
			br(19495, "0.04"),
			br(30769, "0.06"),
			br(42711, "0.08"),
			br(53980, "0.093"),
			br(275738, "0.103"),
			br(330884, "0.113"),
			br(551473, "0.123"),
		},
		LimitThreshold:             dollars(187203),
		Exemption:                  dollars(114),
		StandardDeduction:          dollars(4236),
		DisabilityInsuranceMaxWage: dollars(110902),
		DisabilityInsuranceTaxRate: rate("0.009"),
	},
	2018: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(8544, "0.02"),
			br(20255, "0.04"),
			br(31969, "0.06"),
			br(44377, "0.08"),
			br(56085, "0.093"),
			br(286492, "0.103"),
			br(343788, "0.113"),
			br(572980, "0.123"),
		},
		LimitThreshold:             dollars(194504),
		Exemption:                  dollars(118),
		StandardDeduction:          dollars(4401),
		DisabilityInsuranceMaxWage: dollars(114967),
		DisabilityInsuranceTaxRate: rate("0.01"),
	},
	2019: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(8809, "0.02"),
			br(20883, "0.04"),
			br(32960, "0.06"),
			br(45753, "0.08"),
			br(57824, "0.093"),
			br(295373, "0.103"),
			br(354445, "0.113"),
			br(590742, "0.123"),
		},
		LimitThreshold:             dollars(200534),
		Exemption:                  dollars(122),
		StandardDeduction:          dollars(4537),
		DisabilityInsuranceMaxWage: dollars(118371),
		DisabilityInsuranceTaxRate: rate("0.01"),
	},
	2020: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(8932, "0.02"),
			br(21175, "0.04"),
			br(33421, "0.06"),
			br(46394, "0.08"),
			br(58634, "0.093"),
			br(299508, "0.103"),
			br(359407, "0.113"),
			br(599012, "0.123"),
		},
		LimitThreshold:             dollars(203341),
		Exemption:                  dollars(124),
		StandardDeduction:          dollars(4601),
		DisabilityInsuranceMaxWage: dollars(122909),
		DisabilityInsuranceTaxRate: rate("0.01"),
	},
	2021: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(9325, "0.02"),
			br(22107, "0.04"),
			br(34892, "0.06"),
			br(48435, "0.08"),
			br(61214, "0.093"),
			br(312686, "0.103"),
			br(375221, "0.113"),
			br(625369, "0.123"),
		},
		LimitThreshold:             dollars(212288),
		Exemption:                  dollars(129),
		StandardDeduction:          dollars(4803),
		DisabilityInsuranceMaxWage: dollars(128298),
		DisabilityInsuranceTaxRate: rate("0.012"),
	},
	2022: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(10099, "0.02"),
			br(23942, "0.04"),
			br(37788, "0.06"),
			br(52455, "0.08"),
			br(66295, "0.093"),
			br(338639, "0.103"),
			br(406364, "0.113"),
			br(677275, "0.123"),
		},
		LimitThreshold:             dollars(229908),
		Exemption:                  dollars(140),
		StandardDeduction:          dollars(5202),
		DisabilityInsuranceMaxWage: dollars(145600),
		DisabilityInsuranceTaxRate: rate("0.011"),
	},
	2023: {
		Brackets: []Bracket{
			br(0, "0.01"),
			br(10412, "0.02"),
			br(24684, "0.04"),
			br(38959, "0.06"),
			br(54081, "0.08"),
			br(68350, "0.093"),
			br(349137, "0.103"),
			br(418961, "0.113"),
			br(698271, "0.123"),
		},
		LimitThreshold:             dollars(237035),
		Exemption:                  dollars(144),
		StandardDeduction:          dollars(5363),
		DisabilityInsuranceMaxWage: dollars(153164),
		DisabilityInsuranceTaxRate: rate("0.009"),
	},
}
