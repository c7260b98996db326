// Package cli implements the heroesdata command line tool.
//
// Documents are read from a local directory (--dir) or from the S3 bucket
// configured through GAMEDATA_S3_* variables (--s3). Gamestrings are chosen
// either by object key (--gamestrings) or by an Accept-Language value matched
// against the gamestrings files present in the store (--lang).
package cli
