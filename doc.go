// Package wavels reads the PCM format of WAV and AIFF files from their
// container headers, without touching the audio samples.
//
// A RIFF/WAVE stream is little-endian and carries its format in the fmt
// chunk. A FORM/AIFF stream is big-endian and carries it in the COMM chunk,
// where the sample rate is an 80 bit extended precision float. Decode
// validates the 12 byte envelope, then walks the chunks: known metadata
// chunks of the family (bext, id3, Fake, JUNK for WAVE; COMT, INST, MARK for
// AIFF) are skipped, anything else before the format chunk is an error.
//
//	info, err := wavels.DecodeFile("kick.wav")
//	if err != nil {
//		fmt.Printf("%v (%q)\n", err, wavels.IdentifierOf(err))
//		return
//	}
//	fmt.Println(info) // 44.1 khz 16 bit stereo
//
// Errors are *DecodeError values whose Kind is one of ErrShortRead,
// ErrInvalidContainerEnvelope, ErrInvalidContainerFormat, ErrInvalidChunkID
// or ErrInvalidSampleRate, and whose ID holds the offending identifier.
package wavels
