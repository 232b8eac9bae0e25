package extractors

import (
	"github.com/astrolab/featex/extractor"
)

// The catalogue registers in dependency order; Signature must come after
// the extractors producing PeriodLS and Amplitude.
func init() {
	for _, f := range []extractor.Factory{
		func() extractor.Extractor { return Amplitude{} },
		func() extractor.Extractor { return AndersonDarling{} },
		func() extractor.Extractor { return NewAutocorLength() },
		func() extractor.Extractor { return Beyond1Std{} },
		func() extractor.Extractor { return NewCAR() },
		func() extractor.Extractor { return Color{} },
		func() extractor.Extractor { return NewCon() },
		func() extractor.Extractor { return NewDeltamDeltat() },
		func() extractor.Extractor { return EtaColor{} },
		func() extractor.Extractor { return EtaE{} },
		func() extractor.Extractor { return FluxPercentileRatio{Mid: 20} },
		func() extractor.Extractor { return FluxPercentileRatio{Mid: 35} },
		func() extractor.Extractor { return FluxPercentileRatio{Mid: 50} },
		func() extractor.Extractor { return FluxPercentileRatio{Mid: 65} },
		func() extractor.Extractor { return FluxPercentileRatio{Mid: 80} },
		func() extractor.Extractor { return NewFourierComponents() },
		func() extractor.Extractor { return Gskew{} },
		func() extractor.Extractor { return LinearTrend{} },
		func() extractor.Extractor { return NewLombScargle() },
		func() extractor.Extractor { return MaxSlope{} },
		func() extractor.Extractor { return Mean{} },
		func() extractor.Extractor { return MeanVariance{} },
		func() extractor.Extractor { return MedianAbsDev{} },
		func() extractor.Extractor { return MedianBRP{} },
		func() extractor.Extractor { return PairSlopeTrend{} },
		func() extractor.Extractor { return PercentAmplitude{} },
		func() extractor.Extractor { return PercentDifferenceFluxPercentile{} },
		func() extractor.Extractor { return Q31{} },
		func() extractor.Extractor { return Q31Color{} },
		func() extractor.Extractor { return RCS{} },
		func() extractor.Extractor { return NewSignature() },
		func() extractor.Extractor { return Skew{} },
		func() extractor.Extractor { return NewSlottedALength() },
		func() extractor.Extractor { return SmallKurtosis{} },
		func() extractor.Extractor { return Std{} },
		func() extractor.Extractor { return StetsonJ{} },
		func() extractor.Extractor { return StetsonK{} },
		func() extractor.Extractor { return NewStetsonKAC() },
		func() extractor.Extractor { return StetsonL{} },
		func() extractor.Extractor { return StructureFunctions{} },
	} {
		extractor.MustRegister(f)
	}
}
