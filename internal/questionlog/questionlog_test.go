package questionlog

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     string
	}{
		{
			"no question",
			"That sounds lovely. I hope the rest of your day goes well.",
			"",
		},
		{
			"single question",
			"That makes sense. How do you usually spend your weekends?",
			"How do you usually spend your weekends?",
		},
		{
			"takes last question",
			"Really? That's interesting. So when you travel, do you plan everything ahead?",
			"So when you travel, do you plan everything ahead?",
		},
		{
			"question without trailing period",
			"Do you prefer quiet evenings at home?",
			"Do you prefer quiet evenings at home?",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extract(tc.response); got != tc.want {
				t.Fatalf("Extract(%q) = %q, want %q", tc.response, got, tc.want)
			}
		})
	}
}
