package caldate

// GregorianEaster returns the date of Easter Sunday in the proleptic
// Gregorian calendar for astronomical year y, using the shifted-epact
// form of the Gregorian computus.
func GregorianEaster(y AstronomicalYear) GregorianDate {
	yy := int64(y)
	c := yy/100 + 1
	shiftedEpact := floorMod(14+11*floorMod(yy, 19)-(3*c)/4+(5+8*c)/25, 30)
	if shiftedEpact == 0 || (shiftedEpact == 1 && floorMod(yy, 19) > 10) {
		shiftedEpact++
	}
	paschalMoon := GregorianDate{Year: y, Month: April, Day: 19}.SubDays(shiftedEpact)
	return paschalMoon.StrictlyAfter(Sunday)
}

// JulianEaster returns the date of Easter Sunday in the Julian calendar
// for Anno Domini year y (Orthodox computus), using the unshifted epact
// form that omits the Gregorian century correction.
func JulianEaster(y AnnoDominiYear) JulianDate {
	astro, err := ADToAstronomical(y)
	if err != nil {
		astro = AstronomicalYear(y)
	}
	yy := int64(astro)
	shiftedEpact := floorMod(14+11*floorMod(yy, 19), 30)
	paschalMoon := JulianDate{Year: y, Month: April, Day: 19}.SubDays(shiftedEpact)
	return paschalMoon.StrictlyAfter(Sunday)
}
