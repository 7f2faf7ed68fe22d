package main

import (
	"fmt"
	"os"

	"encmachine/internal/caesar"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("Usage: shift <word> [word...]")
		return
	}

	for _, word := range os.Args[1:] {
		enc, err := caesar.EncryptWord(word)
		if err != nil {
			fmt.Println("Encrypt error:")
			fmt.Println(err)
			return
		}
		fmt.Printf("%s %s\n", word, enc)
	}
}
