package a

import "regexp"

func bad(snippets []string) {
	for _, s := range snippets {
		re := regexp.MustCompile(`\b[A-Z][a-z]+`) // want "regexp.MustCompile called inside loop"
		_ = re.FindAllString(s, -1)
	}
}

func badCompile(snippets []string) {
	for _, s := range snippets {
		re, _ := regexp.Compile(`\b[A-Z][a-z]+`) // want "regexp.Compile called inside loop"
		_ = re.FindAllString(s, -1)
	}
}

func good(snippets []string) {
	re := regexp.MustCompile(`\b[A-Z][a-z]+`)
	for _, s := range snippets {
		_ = re.FindAllString(s, -1)
	}
}

var capitalized = regexp.MustCompile(`\b[A-Z][a-z]+`)

func goodPackageLevel(snippets []string) {
	for _, s := range snippets {
		_ = capitalized.FindAllString(s, -1)
	}
}
