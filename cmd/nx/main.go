// Package main provides the nx decomposition engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/smaximov/nx/linalg"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("nx decomposition engine %s\n", version)
			return
		case "selfcheck":
			if err := selfcheck(); err != nil {
				fmt.Fprintf(os.Stderr, "selfcheck failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("selfcheck ok")
			return
		}
	}

	fmt.Println("nx - dense-matrix decomposition engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version      Show version")
	fmt.Println("  selfcheck    Run the built-in decomposition demo")
}

// selfcheck runs each decomposition on a small built-in sample and
// prints the factors.
func selfcheck() error {
	shape := linalg.Shape{2, 2}
	a := linalg.EncodeFloat64s([]float64{4, 3, 6, 3})

	p, l, u, err := linalg.LU(a, shape, linalg.F64, linalg.LUOptions{Eps: 1e-12}, linalg.F64)
	if err != nil {
		return fmt.Errorf("lu: %w", err)
	}
	fmt.Printf("LU  P=%v L=%v U=%v\n",
		linalg.DecodeFloat64s(p), linalg.DecodeFloat64s(l), linalg.DecodeFloat64s(u))

	q, r, _, _, err := linalg.QR(a, shape, linalg.F64, linalg.QROptions{Mode: linalg.QRModeFull, Eps: 1e-12}, linalg.F64)
	if err != nil {
		return fmt.Errorf("qr: %w", err)
	}
	fmt.Printf("QR  Q=%v R=%v\n", linalg.DecodeFloat64s(q), linalg.DecodeFloat64s(r))

	spd := linalg.EncodeFloat64s([]float64{4, 12, -16, 12, 37, -43, -16, -43, 98})
	ch, err := linalg.Cholesky(spd, linalg.Shape{3, 3}, linalg.F64, linalg.F64)
	if err != nil {
		return fmt.Errorf("cholesky: %w", err)
	}
	fmt.Printf("Cholesky  L=%v\n", linalg.DecodeFloat64s(ch))

	sym := linalg.EncodeFloat64s([]float64{2, 1, 1, 2})
	vals, vecs, err := linalg.Eigh(sym, shape, linalg.F64, linalg.EighOptions{Eps: 1e-9, MaxIter: 1000}, linalg.F64)
	if err != nil {
		return fmt.Errorf("eigh: %w", err)
	}
	fmt.Printf("Eigh  values=%v vectors=%v\n", linalg.DecodeFloat64s(vals), linalg.DecodeFloat64s(vecs))
	return nil
}
