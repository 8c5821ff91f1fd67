// Package testutil provides shared document fixtures for tests.
package testutil

// IDFrontText is a plausible OCR dump of an identity card front face.
const IDFrontText = `United Arab Emirates
Federal Authority for Identity
Resident Identity Card
ID Number: 784-1985-1234567-1
Name: John Michael Smith
Nationality: India
Date of Birth: 10/05/1985
Sex: M
Issuing Date: 02/01/2020
Expiry Date: 02/01/2030
Al Nahda Street Sharjah`

// IDBackText is a plausible OCR dump of an identity card back face,
// including the numeric machine-readable line.
const IDBackText = `Occupation: Engineer
Employer: Gulf Trading Company LLC
Issuing Place: Dubai
Family Sponsor: No
ILARE8505107M3001022784198512345671<<2`

// PassportText is a plausible OCR dump of a passport data page.
const PassportText = `REPUBLIC OF INDIA
Passport No: N1234567
Name: RAHUL KUMAR SHARMA
Nationality: India
Sex: M
Date of Birth: 15/06/1990
Date of Issue: 01/02/2021
Expiry Date: 01/02/2031
P<INDSHARMA<<RAHUL<KUMAR<<<<<<<<<<<<<<<<<<<<`

// VisaText is a plausible OCR dump of a residence visa page.
const VisaText = `UNITED ARAB EMIRATES
RESIDENCE VISA
File Number: 101/2020/1234567
ID Number: 784-1985-1234567-1
UID No: 123456789
Passport No: N1234567
AHMED HASSAN ALI
Profession: ENGINEER
Sponsor: GULF VENTURES FZE
Issue Date: 05/03/2022
Expiry Date: 05/03/2024`

// OCRServiceSuccessJSON is a minimal OCR.space-style success body.
const OCRServiceSuccessJSON = `{
  "ParsedResults": [{"ParsedText": "ID Number: 784-1985-1234567-1\r\nName: John Michael Smith"}],
  "OCRExitCode": 1
}`

// OCRServiceFailureJSON is a minimal OCR.space-style failure body.
const OCRServiceFailureJSON = `{
  "ParsedResults": [],
  "OCRExitCode": 3,
  "ErrorMessage": ["Unable to recognize the file type", "E216"]
}`
