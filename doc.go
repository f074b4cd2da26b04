package numlit

// Package numlit provides:
//
// - A configurable grammar for decimal, hexadecimal, octal and binary numeric text (FormatSpec)
// - Validation of source-code literals and serialized numeric strings (Validate/ValidateLiteral)
// - Extraction into int64/float64 and writing back with re-validation (ParseValue/FormatFloat/FormatInteger)
// - Structured rejections via NumberError (code, byte offset, digit group, separator position)
// - Named presets for common languages and formats, loadable from YAML/JSON/TOML under source/
//
// Design policy:
// - Keep only public APIs in the root package; put the scanner and writer under internal/engine.
// - Place codecs under codec/, vector runs under vector/, and the CLI under cmd/numlit.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  spec := numlit.RustLiteral()
//  c, err := numlit.ValidateLiteral("1_000.5", spec, numlit.Float, numlit.Decimal)
//  f, err := numlit.ParseFloat("1e-3", numlit.RustString())
//
//  hex := numlit.RustRadixLiteral().Without(numlit.IntegerTrailingSeparator)
//  text, err := numlit.FormatInteger(255, hex, numlit.Hexadecimal) // "0xff"
//
