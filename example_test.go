package html5up_test

import (
	"context"
	"fmt"

	html5up "github.com/alnah/go-html5up"
)

// Example demonstrates basic legacy HTML to HTML5 conversion.
func Example() {
	svc := html5up.New()

	result, err := svc.Convert(context.Background(), html5up.Input{
		HTML: `<html xmlns="http://www.w3.org/1999/xhtml"><body><p align="center">Hello<br/></p></body></html>`,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result)
	// Output: <html lang="en"><body><p style="text-align: center;">Hello<br></p></body></html>
}

// Example_withDefaultLang demonstrates overriding the fallback language.
func Example_withDefaultLang() {
	svc := html5up.New(html5up.WithDefaultLang("fr"))

	result, err := svc.Convert(context.Background(), html5up.Input{
		HTML: "<html><body><p>Bonjour</p></body></html>",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result)
	// Output: <html lang="fr"><body><p>Bonjour</p></body></html>
}

// Example_perDocumentLang demonstrates a per-document language override.
func Example_perDocumentLang() {
	svc := html5up.New()

	result, err := svc.Convert(context.Background(), html5up.Input{
		HTML: "<html><body><p>Hallo</p></body></html>",
		Lang: "de",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result)
	// Output: <html lang="de"><body><p>Hallo</p></body></html>
}
