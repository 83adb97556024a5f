package filter

// band is one step of the classifier ladder: the class applies when
// size/target > num/den, i.e. den*size > num*target.
type band struct {
	num, den int
	class    Class
}

// bands is evaluated top to bottom; the first strict match wins, so a ratio
// sitting exactly on a threshold falls into the smaller class.
var bands = [...]band{
	{15, 4, ClassMax},
	{20, 7, Class15_4},
	{5, 2, Class20_7},
	{2, 1, Class5_2},
	{5, 3, Class2},
	{5, 4, Class5_3},
	{20, 19, Class5_4},
}

// ClassForRatio picks the filter class for one axis from the (cropped)
// source extent and the rounded target extent. Upscaling always lands in
// ClassIdentity.
func ClassForRatio(size, target int) Class {
	for _, b := range bands {
		if b.den*size > b.num*target {
			return b.class
		}
	}
	return ClassIdentity
}
