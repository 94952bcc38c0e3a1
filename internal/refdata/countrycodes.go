package refdata

// CountryInfo describes one dialing prefix.
type CountryInfo struct {
	Name   string
	Format string
}

// CountryCodes maps a dialing prefix to its country. The table carries no
// prefix-length ambiguity under shortest-first matching (a 1-digit code is
// never a prefix of a listed 2- or 3-digit code).
var CountryCodes = map[string]CountryInfo{
	"1":   {"United States/Canada", "+1 (XXX) XXX-XXXX"},
	"7":   {"Russia/Kazakhstan", "+7 XXX XXX-XX-XX"},
	"20":  {"Egypt", "+20 XX XXXX XXXX"},
	"27":  {"South Africa", "+27 XX XXX XXXX"},
	"30":  {"Greece", "+30 XXX XXX XXXX"},
	"31":  {"Netherlands", "+31 X XXXXXXXX"},
	"32":  {"Belgium", "+32 XXX XX XX XX"},
	"33":  {"France", "+33 X XX XX XX XX"},
	"34":  {"Spain", "+34 XXX XXX XXX"},
	"36":  {"Hungary", "+36 XX XXX XXXX"},
	"39":  {"Italy", "+39 XXX XXX XXXX"},
	"40":  {"Romania", "+40 XXX XXX XXX"},
	"41":  {"Switzerland", "+41 XX XXX XX XX"},
	"43":  {"Austria", "+43 X XXXXXXXX"},
	"44":  {"United Kingdom", "+44 XXXX XXXXXX"},
	"45":  {"Denmark", "+45 XX XX XX XX"},
	"46":  {"Sweden", "+46 XX XXX XX XX"},
	"47":  {"Norway", "+47 XXX XX XXX"},
	"48":  {"Poland", "+48 XXX XXX XXX"},
	"49":  {"Germany", "+49 XXX XXXXXXX"},
	"51":  {"Peru", "+51 XXX XXX XXX"},
	"52":  {"Mexico", "+52 XX XXXX XXXX"},
	"53":  {"Cuba", "+53 X XXX XXXX"},
	"54":  {"Argentina", "+54 XX XXXX XXXX"},
	"55":  {"Brazil", "+55 XX XXXXX XXXX"},
	"56":  {"Chile", "+56 X XXXX XXXX"},
	"57":  {"Colombia", "+57 XXX XXX XXXX"},
	"58":  {"Venezuela", "+58 XXX XXX XXXX"},
	"60":  {"Malaysia", "+60 XX XXX XXXX"},
	"61":  {"Australia", "+61 X XXXX XXXX"},
	"62":  {"Indonesia", "+62 XXX XXXX XXXX"},
	"63":  {"Philippines", "+63 XXX XXX XXXX"},
	"64":  {"New Zealand", "+64 XX XXX XXXX"},
	"65":  {"Singapore", "+65 XXXX XXXX"},
	"66":  {"Thailand", "+66 XX XXX XXXX"},
	"81":  {"Japan", "+81 XX XXXX XXXX"},
	"82":  {"South Korea", "+82 XX XXXX XXXX"},
	"84":  {"Vietnam", "+84 XXX XXX XXX"},
	"86":  {"China", "+86 XXX XXXX XXXX"},
	"90":  {"Turkey", "+90 XXX XXX XXXX"},
	"91":  {"India", "+91 XXXXX XXXXX"},
	"92":  {"Pakistan", "+92 XXX XXXXXXX"},
	"93":  {"Afghanistan", "+93 XX XXX XXXX"},
	"94":  {"Sri Lanka", "+94 XX XXX XXXX"},
	"95":  {"Myanmar", "+95 XX XXX XXXX"},
	"98":  {"Iran", "+98 XXX XXX XXXX"},
	"212": {"Morocco", "+212 XXX XXXXXX"},
	"213": {"Algeria", "+213 XXX XX XX XX"},
	"216": {"Tunisia", "+216 XX XXX XXX"},
	"234": {"Nigeria", "+234 XXX XXX XXXX"},
	"254": {"Kenya", "+254 XXX XXXXXX"},
	"351": {"Portugal", "+351 XXX XXX XXX"},
	"352": {"Luxembourg", "+352 XXX XXX XXX"},
	"353": {"Ireland", "+353 XX XXX XXXX"},
	"354": {"Iceland", "+354 XXX XXXX"},
	"358": {"Finland", "+358 XX XXX XXXX"},
	"370": {"Lithuania", "+370 XXX XXXXX"},
	"371": {"Latvia", "+371 XXXX XXXX"},
	"372": {"Estonia", "+372 XXXX XXXX"},
	"380": {"Ukraine", "+380 XX XXX XXXX"},
	"381": {"Serbia", "+381 XX XXX XXXX"},
	"385": {"Croatia", "+385 XX XXX XXXX"},
	"386": {"Slovenia", "+386 XX XXX XXX"},
	"420": {"Czech Republic", "+420 XXX XXX XXX"},
	"421": {"Slovakia", "+421 XXX XXX XXX"},
	"852": {"Hong Kong", "+852 XXXX XXXX"},
	"853": {"Macau", "+853 XXXX XXXX"},
	"886": {"Taiwan", "+886 X XXXX XXXX"},
	"961": {"Lebanon", "+961 XX XXX XXX"},
	"962": {"Jordan", "+962 X XXX XXXX"},
	"963": {"Syria", "+963 XXX XXX XXX"},
	"964": {"Iraq", "+964 XXX XXX XXXX"},
	"965": {"Kuwait", "+965 XXXX XXXX"},
	"966": {"Saudi Arabia", "+966 XX XXX XXXX"},
	"971": {"United Arab Emirates", "+971 XX XXX XXXX"},
	"972": {"Israel", "+972 XX XXX XXXX"},
	"974": {"Qatar", "+974 XXXX XXXX"},
}
