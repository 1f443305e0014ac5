package iccmax_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/go-andiamo/iccmax"
	icc "github.com/go-andiamo/iccmax/internal/iccbuild"
)

func ExampleParseProfile() {
	data := icc.New().
		Tag("cprt", icc.Type("text", "Copyright (c) 2024 Example Ltd\x00")).
		Bytes()
	profile, err := iccmax.ParseProfile(bytes.NewReader(data), nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Color space: %s\n", profile.Header.ColorSpace)
	fmt.Printf("    Version: %s\n", profile.Header.Version)
	if cprt, err := profile.TagData(iccmax.TagCopyright); err == nil {
		fmt.Printf("  Copyright: %s\n", cprt.(*iccmax.Text).Value)
	}
	// Output:
	// Color space: RGB
	//     Version: 4.4.0
	//   Copyright: Copyright (c) 2024 Example Ltd
}

func ExampleProfile_Validate() {
	data := icc.New().
		Tag("wtpt", icc.Write(icc.Sig("XYZ "), uint32(1), make([]int32, 3))).
		Bytes()
	profile, err := iccmax.Decode(data, &iccmax.ParseOptions{LazyTagDecode: true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(profile.Validate())
	// Output:
	// 1 error occurred:
	// 	* iccmax: corrupt wtpt[XYZ] at byte 148: reserved bytes are 0x00000001, not zero
}
