package culture

// stampPatterns are the diffusion footprints, one per threshold bucket,
// centered on row 7 column 7. F adds the full value, Q three quarters,
// T two thirds, H half.
var stampPatterns = [stampCount][stampSize]string{
	{ // 1+
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		".......F.......",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	},
	{ // 5+
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"......HTH......",
		"......TFT......",
		"......HTH......",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	},
	{ // 10+
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"......HFH......",
		"......FFF......",
		"......HFH......",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	},
	{ // 20+
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"......HTH......",
		".....HQFQH.....",
		".....TFFFT.....",
		".....HQFQH.....",
		"......HTH......",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	},
	{ // 40+
		"...............",
		"...............",
		"...............",
		"...............",
		"......HHH......",
		".....HTTTH.....",
		"....HTQFQTH....",
		"....HTFFFTH....",
		"....HTQFQTH....",
		".....HTTTH.....",
		"......HHH......",
		"...............",
		"...............",
		"...............",
		"...............",
	},
	{ // 80+
		"...............",
		"...............",
		"...............",
		"...............",
		"......HTH......",
		".....TQFQT.....",
		"....HQFFFQH....",
		"....TFFFFFT....",
		"....HQFFFQH....",
		".....TQFQT.....",
		"......HTH......",
		"...............",
		"...............",
		"...............",
		"...............",
	},
	{ // 160+
		"...............",
		"...............",
		"...............",
		".....HHHHH.....",
		"....HTTTTTH....",
		"...HTQQFQQTH...",
		"...HTQFFFQTH...",
		"...HTFFFFFTH...",
		"...HTQFFFQTH...",
		"...HTQQFQQTH...",
		"....HTTTTTH....",
		".....HHHHH.....",
		"...............",
		"...............",
		"...............",
	},
	{ // 320+
		"...............",
		"...............",
		".....HHHHH.....",
		"....HHTTTHH....",
		"...HTTQQQTTH...",
		"..HHTQQFQQTHH..",
		"..HTQQFFFQQTH..",
		"..HTQFFFFFQTH..",
		"..HTQQFFFQQTH..",
		"..HHTQQFQQTHH..",
		"...HTTQQQTTH...",
		"....HHTTTHH....",
		".....HHHHH.....",
		"...............",
		"...............",
	},
	{ // 640+
		"...............",
		".....HHHHH.....",
		"...HHHTTTHHH...",
		"..HHTTQQQTTHH..",
		"..HTTQQFQQTTH..",
		".HHTQFFFFFQTHH.",
		".HTQQFFFFFQQTH.",
		".HTQFFFFFFFQTH.",
		".HTQQFFFFFQQTH.",
		".HHTQFFFFFQTHH.",
		"..HTTQQFQQTTH..",
		"..HHTTQQQTTHH..",
		"...HHHTTTHHH...",
		".....HHHHH.....",
		"...............",
	},
	{ // 1280+
		".....HHHHH.....",
		"...HHHHTHHHH...",
		"..HHTTTTTTTHH..",
		".HHTTQQQQQTTHH.",
		".HTTQQQFQQQTTH.",
		"HHTQQFFFFFQQTHH",
		"HHTQQFFFFFQQTHH",
		"HTTQFFFFFFFQTTH",
		"HHTQQFFFFFQQTHH",
		"HHTQQFFFFFQQTHH",
		".HTTQQQFQQQTTH.",
		".HHTTQQQQQTTHH.",
		"..HHTTTTTTTHH..",
		"...HHHHTHHHH...",
		".....HHHHH.....",
	},
}
