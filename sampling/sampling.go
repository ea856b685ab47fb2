// Package sampling relates pupil-plane and image-plane sample spacings via
// the discrete Fourier sampling relation. The two conversions are exact
// inverses of each other.
package sampling

import "fmt"

// PupilToPSF converts pupil-plane sample spacing (mm) to PSF-plane sample
// spacing (µm) for the given grid size, wavelength (µm), and effective focal
// length (mm).
func PupilToPSF(pupilSample float64, samples int, wavelength, efl float64) (float64, error) {
	if err := validate(pupilSample, samples, wavelength, efl); err != nil {
		return 0, err
	}

	return (wavelength * efl * 1e3) / (pupilSample * float64(samples)), nil
}

// PSFToPupil converts PSF-plane sample spacing (µm) back to pupil-plane
// sample spacing (mm). Composing it with PupilToPSF is the identity.
func PSFToPupil(psfSample float64, samples int, wavelength, efl float64) (float64, error) {
	if err := validate(psfSample, samples, wavelength, efl); err != nil {
		return 0, err
	}

	return (wavelength * efl * 1e3) / (psfSample * float64(samples)), nil
}

func validate(sample float64, samples int, wavelength, efl float64) error {
	if sample <= 0 {
		return fmt.Errorf("sampling: sample spacing must be > 0: %f", sample)
	}
	if samples <= 0 {
		return fmt.Errorf("sampling: sample count must be > 0: %d", samples)
	}
	if wavelength <= 0 {
		return fmt.Errorf("sampling: wavelength must be > 0: %f", wavelength)
	}
	if efl <= 0 {
		return fmt.Errorf("sampling: focal length must be > 0: %f", efl)
	}
	return nil
}
