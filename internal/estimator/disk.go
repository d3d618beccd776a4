package estimator

// DiskOverheadFactor covers container headers and metadata in the weight file.
const DiskOverheadFactor = 1.1

// defaultBitsPerParam assumes one byte per parameter.
const defaultBitsPerParam = 8

var bitsPerParam = map[Quantization]float64{
	F32:  32,
	F16:  16,
	Q8:   8,
	Q6:   6,
	Q5:   5,
	Q4:   4,
	Q3:   3,
	Q2:   2,
	GPTQ: 4,
	AWQ:  4,
}

// BitsPerParam returns the stored bits per weight for q, or 8 when unknown.
func BitsPerParam(q Quantization) float64 {
	if b, ok := bitsPerParam[q]; ok {
		return b
	}
	return defaultBitsPerParam
}

// OnDiskSizeGB returns the weight file size in decimal GB. Context length and
// KV cache settings do not affect it.
func OnDiskSizeGB(model ModelConfig) float64 {
	totalBits := model.ParamsBillions * 1e9 * BitsPerParam(model.Quantization)
	bytes := totalBits / 8
	return bytes / 1e9 * DiskOverheadFactor
}
