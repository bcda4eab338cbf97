// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
yespower computes yespower digests of hex encoded inputs.

Inputs are taken from the positional arguments or, when there are none, one
per line from standard input.  Each input produces one line on standard
output holding the input followed by its digest.  With --header every input
must be an 80-byte block header and the line also reports whether the digest
meets the target encoded in the header's bits.

Usage:

	yespower [OPTIONS] [hex input...]

Application Options:

	-C, --configfile=  Path to configuration file
	    --logdir=      Directory to log output
	-d, --debuglevel=  Logging level for all subsystems {trace, debug, info,
	                   warn, error, critical} -- You may also specify
	                   <subsystem>=<level>,<subsystem2>=<level>,... to set
	                   the log level for individual subsystems -- Use show to
	                   list available subsystems (info)
	-a, --algo=        Named parameter preset {yespower, yespowerr16,
	                   yescrypt, yescryptr16, yescryptr24, yescryptr32,
	                   regtest} (yespower)
	    --version=     Override the preset's algorithm version {0.5, 1.0}
	    --n=           Override the preset's block count N, a power of two
	    --r=           Override the preset's block size factor r
	    --pers=        Override the preset's personalization string
	    --nopers       Clear the preset's personalization string
	    --emptypers    Use an empty personalization string, which unlike
	                   --nopers still applies the 0.5 pers step
	    --strict       Only accept N and r within the reference
	                   implementation's bounds
	    --maxmem=      Largest scratch area to allocate in MiB -- 0 selects
	                   half of physical memory
	-j, --workers=     Number of digests computed at once -- 0 selects the
	                   number of CPUs
	    --cachesize=   Number of digests kept in memory -- 0 disables the
	                   cache (1024)
	-b, --datadir=     Directory to persist computed digests in -- empty
	                   disables the store
	    --header       Treat inputs as 80-byte block headers and check their
	                   proof of work

Help Options:

	-h, --help         Show this help message
*/
package main
