// Package stats contiene las primitivas numéricas del subsistema de analítica.
package stats

import (
	"fmt"
	"math"
)

// Coeficientes de la aproximación racional de Acklam para la inversa de la CDF normal.
// Error relativo absoluto < 1.15e-9 en todo el dominio.
var (
	invNormA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	invNormB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	invNormC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	invNormD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

// Límites de las regiones de la aproximación (cola baja, central, cola alta).
const (
	invNormPLow  = 0.02425
	invNormPHigh = 1 - invNormPLow
)

// NormalInvCDF devuelve z tal que P(Z ≤ z) = p para Z ~ N(0,1),
// usando el algoritmo de Acklam (aproximación racional por regiones).
// p debe estar en (0,1) exclusivo: no existe z finito en los extremos.
func NormalInvCDF(p float64) (float64, error) {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return 0, fmt.Errorf("stats: probabilidad fuera de (0,1): %v", p)
	}

	var z float64
	switch {
	case p < invNormPLow:
		// Cola inferior
		q := math.Sqrt(-2 * math.Log(p))
		z = (((((invNormC[0]*q+invNormC[1])*q+invNormC[2])*q+invNormC[3])*q+invNormC[4])*q + invNormC[5]) /
			((((invNormD[0]*q+invNormD[1])*q+invNormD[2])*q+invNormD[3])*q + 1)
	case p <= invNormPHigh:
		// Región central
		q := p - 0.5
		r := q * q
		z = (((((invNormA[0]*r+invNormA[1])*r+invNormA[2])*r+invNormA[3])*r+invNormA[4])*r + invNormA[5]) * q /
			(((((invNormB[0]*r+invNormB[1])*r+invNormB[2])*r+invNormB[3])*r+invNormB[4])*r + 1)
	default:
		// Cola superior (simétrica a la inferior)
		q := math.Sqrt(-2 * math.Log(1-p))
		z = -(((((invNormC[0]*q+invNormC[1])*q+invNormC[2])*q+invNormC[3])*q+invNormC[4])*q + invNormC[5]) /
			((((invNormD[0]*q+invNormD[1])*q+invNormD[2])*q+invNormD[3])*q + 1)
	}

	// Un paso de Halley contra la CDF exacta afina el resultado a precisión de máquina.
	e := 0.5*math.Erfc(-z/math.Sqrt2) - p
	u := e * math.Sqrt(2*math.Pi) * math.Exp(z*z/2)
	z = z - u/(1+z*u/2)

	return z, nil
}

// Media devuelve el promedio aritmético de la serie; 0 para serie vacía.
func Media(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// DesviacionEstandar devuelve la desviación estándar muestral (n-1);
// 0 cuando hay menos de dos observaciones.
func DesviacionEstandar(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := Media(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
