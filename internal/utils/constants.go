package utils

// QuantizeBits is the number of bits kept per color channel when bucketing colors
const QuantizeBits = 4

// MaxSlugLength caps identifiers produced by Slugify
const MaxSlugLength = 40
