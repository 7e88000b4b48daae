package server

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sentiment Analyzer</title>
<style>
  body { font-family: Arial, sans-serif; max-width: 720px; margin: 40px auto; color: #333; }
  #userInput { width: 100%; padding: 10px; font-size: 16px; box-sizing: border-box; }
  button { margin-top: 10px; padding: 10px 20px; font-size: 16px; cursor: pointer; }
  .hidden { display: none; }
  .panel { margin-top: 20px; padding: 12px; border-radius: 6px; }
  .error-message { background: #ffebee; color: #c62828; border: 1px solid #ef9a9a; }
  .notice-message { background: #e3f2fd; color: #1976d2; border: 1px solid #90caf9; }
  .advisory-message { background: #fff8e1; color: #f57f17; border: 1px solid #ffe082; }
  .sentiment-result { font-size: 28px; text-align: center; font-weight: bold; }
  .sentiment-positive { color: #00c853; }
  .sentiment-negative { color: #d32f2f; }
  .sentiment-neutral { color: #1976d2; }
  #confidenceScore { text-align: center; }
  #chartFrame { width: 100%; height: 360px; border: none; }
</style>
</head>
<body>
<h1>Sentiment Analyzer</h1>
<input id="userInput" type="text" placeholder="Type a sentence and press Enter">
<button id="analyzeBtn">Analyze</button>

<div id="errorMessage" class="panel error-message hidden"></div>
<div id="adviceMessage" class="panel advisory-message hidden"></div>
<div id="noticeMessage" class="panel notice-message hidden"></div>
<div id="resultContainer" class="hidden">
  <div id="sentimentResult" class="sentiment-result"></div>
  <p id="confidenceScore"></p>
  <iframe id="chartFrame" title="Confidence distribution"></iframe>
</div>

<script>
let latest = 0;

function show(id, text) {
  const el = document.getElementById(id);
  el.textContent = text;
  el.classList.remove('hidden');
}

function hideAll() {
  ['errorMessage', 'adviceMessage', 'noticeMessage', 'resultContainer'].forEach(id =>
    document.getElementById(id).classList.add('hidden'));
}

async function analyze() {
  const seq = ++latest;
  const text = document.getElementById('userInput').value;
  hideAll();

  let body;
  try {
    const resp = await fetch('/api/v1/analyze', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ text: text })
    });
    body = await resp.json();
  } catch (e) {
    body = { error: 'Sentiment analysis is unavailable right now. Please try again later.' };
  }
  if (seq !== latest) {
    return;
  }

  if (body.error) {
    show('errorMessage', body.error);
    return;
  }
  if (body.advisory) {
    show('adviceMessage', body.advisory);
    return;
  }

  const label = body.result.label.toLowerCase();
  const headline = document.getElementById('sentimentResult');
  headline.className = 'sentiment-result sentiment-' + label;
  headline.textContent = body.display;
  document.getElementById('confidenceScore').textContent = 'Confidence: ' + body.confidence;
  document.getElementById('chartFrame').src = '/chart?label=' + encodeURIComponent(body.result.label) +
    '&confidence=' + encodeURIComponent(body.result.confidence);
  document.getElementById('resultContainer').classList.remove('hidden');
  if (body.notice) {
    show('noticeMessage', body.notice);
  }
}

document.getElementById('analyzeBtn').addEventListener('click', analyze);
document.getElementById('userInput').addEventListener('keypress', e => {
  if (e.key === 'Enter') {
    analyze();
  }
});
</script>
</body>
</html>
`
