package inir

// The fault code is 8 hex characters, one per fault category, most
// significant category (7) first. The character 'a' means no fault in
// that category; any other value indexes the category's table below.
//
// Descriptions are as given in the SGX communication guide and must not
// be reworded - downstream alerting matches on them.
var faultTable = map[int]map[byte]string{
	0: {
		'1': "Sensor not Present",
		'2': "Temperature sensor not working OR Device Temperature Out of the Operating Range",
		'3': "Active or Reference are weak",
		'4': "First Time Configuration Mode, no settings present",
	},
	1: {
		'1': "Last Reset was because of a Power on Reset",
		'2': "Last Reset was because of a Watchdog Timer",
		'3': "Last Reset was because of a Software Reset",
		'4': "Last Reset was because of an External Pin Interrupt",
	},
	2: {
		'1': "Gas concentration is not stable yet.",
	},
	3: {
		'1': "DAC is switched off",
		'2': "DAC output disable in Configuration mode",
	},
	4: {
		'1': "Break Indicator P1.0 set LOW for more than the maximum word length",
		'2': "Framing Error, stop bit was invalid",
		'3': "Parity Error, stop bit was invalid",
		'4': "Overrun Error, data overwrite before being read",
	},
	5: {
		'1': "Timer1 Error",
		'2': "Timer2/Watchdog Error",
	},
	6: {
		'1': "Over Range of Conc.%v.v Operation > Full Scale",
		'2': "Under Range of Conc.%v.v",
		'3': "Warm-Up Time, data not valid",
	},
	7: {
		'1': "Unable to store Data, to the INIR",
		'2': "Unable to read Data from the INIR",
	},
}

// DecodeFaultCode resolves each non-sentinel character of a fault code
// to its description, most significant category first. A digit with no
// entry in its category fails with UnknownFaultError rather than being
// skipped.
func DecodeFaultCode(code string) ([]string, error) {
	if len(code) == 0 {
		return nil, ErrEmptyFaultCode
	}
	var descriptions []string
	category := 7
	for i := 0; i < len(code); i++ {
		digit := code[i]
		if digit == 'a' || digit == 'A' {
			category--
			continue
		}
		description, ok := faultTable[category][digit]
		if !ok {
			return nil, &UnknownFaultError{Category: category, Digit: digit}
		}
		descriptions = append(descriptions, description)
		category--
	}
	return descriptions, nil
}
