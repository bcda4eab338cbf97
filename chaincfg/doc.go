// Package chaincfg defines named yespower configurations.
//
// Each Params value pairs the yespower cost parameters of an algorithm
// variant with the proof of work limit used when checking blocks.  The
// presets are registered at init and can be looked up by name, which is
// how the command line tool resolves its --algo option:
//
//	params, err := chaincfg.ByName("yespowerr16")
//	if err != nil {
//		// unknown name
//	}
//	digest, err := yespower.Hash(header, &params.Algorithm)
//
// Additional params can be added with Register before they are used.
package chaincfg
